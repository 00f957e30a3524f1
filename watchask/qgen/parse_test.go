package qgen

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
		wantErr  bool
	}{
		{
			name: "plain array",
			raw: `[{"question":"What color is the sky?","correct":"Blue",
				"distractors":["Green","Red"],"difficulty":"easy"}]`,
			expected: 1,
		},
		{
			name: "code fenced",
			raw: "```\n" + `[{"question":"Q?","correct":"A","distractors":["B","C"]}]` + "\n```",
			expected: 1,
		},
		{
			name: "code fenced with json tag",
			raw: "```json\n" + `[{"question":"Q?","correct":"A","distractors":["B","C"]}]` + "\n```",
			expected: 1,
		},
		{
			name: "malformed items dropped",
			raw: `[
				{"question":"Q1?","correct":"A","distractors":["B","C"]},
				{"question":"","correct":"A","distractors":["B","C"]},
				{"question":"Q3?","correct":"","distractors":["B","C"]},
				{"question":"Q4?","correct":"A","distractors":["B"]}
			]`,
			expected: 1,
		},
		{
			name:    "all items malformed",
			raw:     `[{"question":"","correct":"","distractors":[]}]`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     "I'm sorry, I can't help with that.",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := parseResponse(test.raw)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, actual, test.expected)
		})
	}
}

func TestParseResponseTimestamps(t *testing.T) {
	raw := `[
		{"timestamp": 95, "question":"Later?","correct":"A","distractors":["B","C"]},
		{"timestamp": "1:05", "question":"Earlier?","correct":"A","distractors":["B","C"]}
	]`

	actual, err := parseResponse(raw)
	require.NoError(t, err)
	require.Len(t, actual, 2)

	// sorted by timestamp
	assert.Equal(t, "Earlier?", actual[0].Prompt)
	assert.Equal(t, 65*time.Second, actual[0].Start)
	assert.Equal(t, "Later?", actual[1].Prompt)
	assert.Equal(t, 95*time.Second, actual[1].Start)
}

func TestParseResponseCapsDistractors(t *testing.T) {
	raw := `[{"question":"Q?","correct":"A","distractors":["B","C","D","E"]}]`

	actual, err := parseResponse(raw)
	require.NoError(t, err)
	require.Len(t, actual, 1)
	assert.Len(t, actual[0].Distractors, 3)
}

func TestFallbackQuestions(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. Short. Another reasonably long sentence follows here! And one more for good measure?"

	actual := FallbackQuestions(text, 2, 30*time.Second)
	require.Len(t, actual, 2)
	for _, q := range actual {
		assert.True(t, q.Valid())
		assert.Equal(t, 30*time.Second, q.Start)
		assert.Len(t, q.Distractors, 3)
	}
	assert.Contains(t, actual[0].Prompt, "The quick brown fox")
}

func TestFallbackQuestionsNothingUsable(t *testing.T) {
	assert.Empty(t, FallbackQuestions("Tiny. Bits. Only.", 2, 0))
}

func TestFallbackQuestionsCyrillic(t *testing.T) {
	// two bytes per letter: a byte count would both pass the too-short filter
	// and cut the excerpt mid-rune
	text := "Привет мир. Сегодня мы узнаем очень много нового о планетах, звёздах, кометах и всей нашей солнечной системе!"

	actual := FallbackQuestions(text, 2, 10*time.Second)
	require.Len(t, actual, 1)

	q := actual[0]
	assert.True(t, utf8.ValidString(q.Prompt))
	assert.Contains(t, q.Prompt, "Сегодня мы узнаем")
	assert.NotContains(t, q.Prompt, "�")
	assert.Equal(t, 70, len([]rune(strings.TrimSuffix(strings.TrimPrefix(q.Prompt, `What was mentioned here: "`), `"...`))))
}
