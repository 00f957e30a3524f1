package transcript

import (
	"fmt"
	"strings"
	"time"
)

// Caption is a single subtitle line with its position on the video timeline.
type Caption struct {
	Text     string        `json:"text"`
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
}

// End is the point on the timeline where this caption stops being shown.
func (c Caption) End() time.Duration {
	return c.Start + c.Duration
}

// Transcript is the full ordered caption track for a single video.
type Transcript struct {
	VideoID  string    `json:"videoId"`
	Language string    `json:"language"`
	Captions []Caption `json:"captions"`
}

// Text joins all non-empty caption lines into a single space-separated string.
func (t Transcript) Text() string {
	parts := make([]string, 0, len(t.Captions))
	for _, c := range t.Captions {
		if s := strings.TrimSpace(c.Text); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Timestamped renders the transcript as one "[MM:SS] text" line per caption,
// the form handed to the single-shot question generator.
func (t Transcript) Timestamped() string {
	lines := make([]string, 0, len(t.Captions))
	for _, c := range t.Captions {
		text := strings.TrimSpace(c.Text)
		if text == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", FormatTimestamp(c.Start), text))
	}
	return strings.Join(lines, "\n")
}
