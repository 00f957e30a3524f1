package qgen

import (
	"context"
	"fmt"

	"github.com/watchask/watchask/internal/log"
	"github.com/watchask/watchask/watchask/transcript"
)

// TextGenerator produces raw model output for a system instruction + prompt pair.
// Satisfied by *Client; swapped for a stub in tests.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Generator turns transcript text into validated quiz questions.
type Generator struct {
	model TextGenerator
}

func NewGenerator(model TextGenerator) *Generator {
	return &Generator{model: model}
}

// FromChunk asks the model for a few questions grounded in a single transcript
// fragment, steering it away from the previously generated questions.
func (g *Generator) FromChunk(ctx context.Context, fragment, language string, previousQuestions []string) ([]Question, error) {
	log.Debugf("generating questions: lang=%s prev=%d fragment=%d chars", language, len(previousQuestions), len(fragment))

	raw, err := g.model.Generate(ctx, chunkSystemPrompt(language, previousQuestions), chunkUserPrompt(fragment))
	if err != nil {
		return nil, fmt.Errorf("chunk generation failed: %w", err)
	}

	return parseResponse(raw)
}

// FromTranscript asks the model for up to maxQuestions items in a single call
// over the whole timestamped transcript; items come back timestamped and sorted.
func (g *Generator) FromTranscript(ctx context.Context, t transcript.Transcript, language string, maxQuestions int) ([]Question, error) {
	timestamped := t.Timestamped()
	if timestamped == "" {
		return nil, fmt.Errorf("transcript has no usable text")
	}

	log.Debugf("generating questions (single call): lang=%s lines=%d max=%d", language, len(t.Captions), maxQuestions)

	raw, err := g.model.Generate(ctx, "", fullTranscriptPrompt(timestamped, language, maxQuestions))
	if err != nil {
		return nil, fmt.Errorf("transcript generation failed: %w", err)
	}

	questions, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions, nil
}
