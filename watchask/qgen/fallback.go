package qgen

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var sentenceSplit = regexp.MustCompile(`[.!?]\s+`)

// fallbackDistractors are the stock wrong answers used when the model yields nothing.
var fallbackDistractors = []string{"Not mentioned", "Something unrelated", "I'm not sure"}

// FallbackQuestions builds up to k literal "what was mentioned" items from the
// fragment's sentences. Used when the model fails or returns nothing usable.
func FallbackQuestions(fragment string, k int, start time.Duration) []Question {
	var out []Question
	for _, s := range sentenceSplit.Split(fragment, -1) {
		s = strings.TrimSpace(s)
		// length checks are in characters, not bytes, so that non-latin
		// captions are not cut mid-rune
		runes := []rune(s)
		if len(runes) <= 12 {
			continue
		}
		excerpt := s
		if len(runes) > 70 {
			excerpt = string(runes[:70])
		}
		out = append(out, Question{
			Prompt:      fmt.Sprintf("What was mentioned here: %q...", excerpt),
			Correct:     s,
			Distractors: append([]string(nil), fallbackDistractors...),
			Start:       start,
		})
		if len(out) >= k {
			break
		}
	}
	return out
}
