package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchask/watchask/watchask/presenter/models"
	"github.com/watchask/watchask/watchask/qgen"
	"github.com/watchask/watchask/watchask/quiz"
)

func playQuestions() []qgen.Question {
	return []qgen.Question{
		{
			Prompt:      "What color is the sky?",
			Correct:     "Blue",
			Distractors: []string{"Green", "Red"},
			Difficulty:  "easy",
			Start:       42 * time.Second,
		},
		{
			Prompt:      "How many legs does a spider have?",
			Correct:     "Eight",
			Distractors: []string{"Six", "Four"},
			Difficulty:  "medium",
			Start:       90 * time.Second,
		},
	}
}

func TestPlayQuizAllCorrect(t *testing.T) {
	session := quiz.NewSession("dQw4w9WgXcQ", "en", playQuestions())

	// the first question presents the correct answer first, the second swaps
	// the first two choices
	in := strings.NewReader("1\n2\n")
	var out bytes.Buffer

	require.NoError(t, playQuiz(session, in, &out))

	actual := stripansi.Strip(out.String())
	assert.Contains(t, actual, "Quiz for https://www.youtube.com/watch?v=dQw4w9WgXcQ (2 questions)")
	assert.Contains(t, actual, "Question 1 of 2 (easy)")
	assert.Contains(t, actual, "Question 2 of 2 (medium)")
	assert.Contains(t, actual, "Correct!")
	assert.Contains(t, actual, "Final score: 2/2 (100%)")
	assert.Contains(t, actual, "Excellent! You really paid attention!")
	assert.NotContains(t, actual, "Not quite.")
}

func TestPlayQuizSecondAttempt(t *testing.T) {
	session := quiz.NewSession("dQw4w9WgXcQ", "en", playQuestions())

	// miss the first question once, then recover on the retry
	in := strings.NewReader("2\n1\n2\n")
	var out bytes.Buffer

	require.NoError(t, playQuiz(session, in, &out))

	actual := stripansi.Strip(out.String())
	assert.Contains(t, actual, "Not quite. The answer was: Blue")
	assert.Contains(t, actual, "Rewatch this part: https://www.youtube.com/embed/dQw4w9WgXcQ?start=42")
	assert.Contains(t, actual, "One more try!")
	assert.Contains(t, actual, "Final score: 2/2 (100%)")
}

func TestPlayQuizRejectsBadInput(t *testing.T) {
	session := quiz.NewSession("dQw4w9WgXcQ", "en", playQuestions())

	in := strings.NewReader("nope\n9\n1\n2\n")
	var out bytes.Buffer

	require.NoError(t, playQuiz(session, in, &out))

	actual := stripansi.Strip(out.String())
	assert.Contains(t, actual, "Please answer with a number between 1 and 3")
	assert.Contains(t, actual, "Final score: 2/2 (100%)")
}

func TestPlayQuizLowScore(t *testing.T) {
	session := quiz.NewSession("dQw4w9WgXcQ", "en", playQuestions())

	// miss everything, both attempts
	in := strings.NewReader("2\n2\n1\n1\n")
	var out bytes.Buffer

	require.NoError(t, playQuiz(session, in, &out))

	actual := stripansi.Strip(out.String())
	assert.Contains(t, actual, "Final score: 0/2 (0%)")
	assert.Contains(t, actual, "Keep practicing! Watch the video once more.")
}

func TestWriteQuizReport(t *testing.T) {
	session := quiz.NewSession("dQw4w9WgXcQ", "en", playQuestions())

	// first question right on the first try, second question missed twice
	_, err := session.Submit("Blue")
	require.NoError(t, err)
	_, err = session.Submit("Six")
	require.NoError(t, err)
	_, err = session.Submit("Four")
	require.NoError(t, err)
	require.True(t, session.Done())

	reportPath := path.Join(t.TempDir(), "report.json")
	require.NoError(t, writeQuizReport(session, reportPath))

	contents, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	var doc models.Document
	require.NoError(t, json.Unmarshal(contents, &doc))

	assert.Equal(t, "dQw4w9WgXcQ", doc.Video.ID)
	assert.Len(t, doc.Questions, 2)
	require.NotNil(t, doc.Summary)
	assert.Equal(t, 1, doc.Summary.Score)
	assert.Equal(t, 2, doc.Summary.Total)
	assert.Equal(t, 50.0, doc.Summary.Percentage)
	assert.Equal(t, quiz.GradePractice, doc.Summary.Grade)
}
