package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchask/watchask/watchask/presenter/models"
)

func testDocument() models.Document {
	return models.Document{
		Video: models.Video{
			ID:           "dQw4w9WgXcQ",
			URL:          "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Language:     "en",
			LanguageName: "English",
		},
		Questions: []models.Question{
			{
				Start:      12.5,
				Timestamp:  "00:12",
				Question:   "What color is the sky?",
				Answer:     "Blue",
				Choices:    []string{"Blue", "Green", "Red"},
				Difficulty: "easy",
			},
			{
				Start:      93,
				Timestamp:  "01:33",
				Question:   "How many legs does a spider have?",
				Answer:     "Eight",
				Choices:    []string{"Eight", "Six", "Four"},
				Difficulty: "medium",
			},
		},
		Descriptor: models.Descriptor{
			Name:    "watchask",
			Version: "[not provided]",
		},
	}
}

func TestGetRows(t *testing.T) {
	expected := [][]string{
		{"1", "00:12", "What color is the sky?", "Blue", "easy"},
		{"2", "01:33", "How many legs does a spider have?", "Eight", "medium"},
	}

	actual := getRows(testDocument()).Render()

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("unexpected rows (-want +got):\n%s", diff)
	}
}

func TestTablePresenter(t *testing.T) {
	var buffer bytes.Buffer
	pres := NewPresenter(testDocument())

	require.NoError(t, pres.Present(&buffer))

	actual := buffer.String()
	assert.Contains(t, actual, "QUESTION")
	assert.Contains(t, actual, "What color is the sky?")
	assert.Contains(t, actual, "01:33")
	assert.Contains(t, actual, "Eight")
	assert.NotContains(t, actual, "Score:")
}

func TestTablePresenterWithSummary(t *testing.T) {
	doc := testDocument()
	doc.Summary = &models.Summary{
		Score:      1,
		Total:      2,
		Percentage: 50,
		Grade:      "keep-practicing",
	}

	var buffer bytes.Buffer
	require.NoError(t, NewPresenter(doc).Present(&buffer))

	assert.Contains(t, buffer.String(), "Score: 1/2 (50.0%) - keep-practicing")
}

func TestEmptyDocument(t *testing.T) {
	var buffer bytes.Buffer
	pres := NewPresenter(models.Document{})

	require.NoError(t, pres.Present(&buffer))

	assert.Equal(t, "No questions generated", strings.TrimSpace(buffer.String()))
}
