package qgen

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/watchask/transcript"
)

// rawItem matches the JSON contract the prompts ask the model for. The
// timestamp may come back as a number of seconds or a "M:SS" string.
type rawItem struct {
	Question    string      `json:"question"`
	Correct     string      `json:"correct"`
	Distractors []string    `json:"distractors"`
	Difficulty  string      `json:"difficulty"`
	Timestamp   interface{} `json:"timestamp"`
}

// parseResponse decodes a model response into validated questions. Responses
// wrapped in code fences (with or without a leading "json" tag) are tolerated;
// malformed items are dropped, not fatal.
func parseResponse(raw string) ([]Question, error) {
	cleaned := stripFences(raw)

	var items []rawItem
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("model response is not a JSON array: %w", err)
	}

	var out []Question
	for _, item := range items {
		q := Question{
			Prompt:     strings.TrimSpace(item.Question),
			Correct:    strings.TrimSpace(item.Correct),
			Difficulty: strings.TrimSpace(item.Difficulty),
			Start:      parseItemTimestamp(item.Timestamp),
		}
		for _, d := range item.Distractors {
			if s := strings.TrimSpace(d); s != "" {
				q.Distractors = append(q.Distractors, s)
			}
		}
		if len(q.Distractors) > 3 {
			q.Distractors = q.Distractors[:3]
		}
		if !q.Valid() {
			log.Debugf("dropping malformed generated item: %+v", item)
			continue
		}
		out = append(out, q)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no valid questions in model response")
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})

	return out, nil
}

func stripFences(raw string) string {
	r := strings.TrimSpace(raw)
	if !strings.HasPrefix(r, "```") {
		return r
	}

	lines := strings.Split(r, "\n")
	if strings.HasPrefix(lines[0], "```") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	r = strings.TrimSpace(strings.Join(lines, "\n"))
	if strings.HasPrefix(strings.ToLower(r), "json") {
		r = strings.TrimSpace(r[4:])
	}
	return r
}

func parseItemTimestamp(value interface{}) time.Duration {
	switch v := value.(type) {
	case float64:
		return time.Duration(v * float64(time.Second))
	case string:
		return transcript.ParseTimestamp(v)
	case json.Number:
		if secs, err := v.Float64(); err == nil {
			return time.Duration(secs * float64(time.Second))
		}
	}
	return 0
}
