package transcript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
	}{
		{"1:30", 90 * time.Second},
		{"[1:30]", 90 * time.Second},
		{"0:05", 5 * time.Second},
		{"1:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"90", 90 * time.Second},
		{"90.5", 90*time.Second + 500*time.Millisecond},
		{"", 0},
		{"not-a-time", 0},
		{"1:2:3:4", 0},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseTimestamp(test.input))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "[0:00]", FormatTimestamp(0))
	assert.Equal(t, "[1:05]", FormatTimestamp(65*time.Second))
	assert.Equal(t, "[61:40]", FormatTimestamp(3700*time.Second))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Latvian", LanguageName("lv"))
	assert.Equal(t, "Latvian", LanguageName("lv-LV"))
	assert.Equal(t, "Spanish", LanguageName("es-419"))
	assert.Equal(t, "Russian", LanguageName("ru"))
	assert.Equal(t, "English", LanguageName("en-US"))
	assert.Equal(t, "English", LanguageName(""))
	assert.Equal(t, "English", LanguageName("de"))
}
