package qgen

import (
	"strings"
	"time"
)

// Question is a single generated multiple-choice item.
type Question struct {
	Prompt      string        `json:"question"`
	Correct     string        `json:"correct"`
	Distractors []string      `json:"distractors"`
	Difficulty  string        `json:"difficulty,omitempty"`
	Start       time.Duration `json:"start"`
}

// Choices returns the correct answer followed by the distractors.
func (q Question) Choices() []string {
	out := make([]string, 0, len(q.Distractors)+1)
	out = append(out, q.Correct)
	out = append(out, q.Distractors...)
	return out
}

// Valid reports whether the item satisfies the generation contract: a prompt,
// a correct answer, and at least two distractors.
func (q Question) Valid() bool {
	return strings.TrimSpace(q.Prompt) != "" &&
		strings.TrimSpace(q.Correct) != "" &&
		len(q.Distractors) >= 2
}
