package models

import (
	"time"

	"github.com/watchask/watchask/internal"
	"github.com/watchask/watchask/internal/version"
	"github.com/watchask/watchask/watchask/qgen"
	"github.com/watchask/watchask/watchask/transcript"
	"github.com/watchask/watchask/watchask/video"
)

// Document is the root of any presented question-set report.
type Document struct {
	Video      Video      `json:"video"`
	Questions  []Question `json:"questions"`
	Summary    *Summary   `json:"summary,omitempty"`
	Descriptor Descriptor `json:"descriptor"`
}

// Descriptor identifies the tool that produced the document.
type Descriptor struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Video describes the source video of the question set.
type Video struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Language     string `json:"language"`
	LanguageName string `json:"languageName"`
}

// Question is a single presented item.
type Question struct {
	Start      float64  `json:"start"`
	Timestamp  string   `json:"timestamp"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Choices    []string `json:"choices"`
	Difficulty string   `json:"difficulty,omitempty"`
}

// Summary captures a finished quiz run.
type Summary struct {
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
}

// NewDocument creates and populates a new Document struct from a generated question set.
func NewDocument(videoID, language string, questions []qgen.Question) Document {
	// preallocate so an empty set presents as [] instead of null
	items := make([]Question, 0, len(questions))
	for _, q := range questions {
		items = append(items, Question{
			Start:      roundSeconds(q.Start),
			Timestamp:  transcript.FormatTimestamp(q.Start),
			Question:   q.Prompt,
			Answer:     q.Correct,
			Choices:    q.Choices(),
			Difficulty: q.Difficulty,
		})
	}

	return Document{
		Video: Video{
			ID:           videoID,
			URL:          video.WatchURL(videoID),
			Language:     language,
			LanguageName: transcript.LanguageName(language),
		},
		Questions: items,
		Descriptor: Descriptor{
			Name:    internal.ApplicationName,
			Version: version.FromBuild().Version,
		},
	}
}

func roundSeconds(d time.Duration) float64 {
	return float64(int(d.Seconds()*10)) / 10
}
