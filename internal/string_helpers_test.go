package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAnyOfPrefixes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		prefixes []string
		expected bool
	}{
		{
			name:  "go case",
			input: "https://youtu.be/abc",
			prefixes: []string{
				"http://",
				"https://",
			},
			expected: true,
		},
		{
			name:  "no match",
			input: "youtube.com/watch",
			prefixes: []string{
				"http://",
				"https://",
			},
			expected: false,
		},
		{
			name:     "empty prefixes",
			input:    "https://youtu.be/abc",
			prefixes: []string{},
			expected: false,
		},
		{
			name:  "positive match last",
			input: "ftp://example.com",
			prefixes: []string{
				"http://",
				"ftp://",
			},
			expected: true,
		},
		{
			name:  "empty input",
			input: "",
			prefixes: []string{
				"http://",
			},
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, HasAnyOfPrefixes(test.input, test.prefixes...))
		})
	}
}
