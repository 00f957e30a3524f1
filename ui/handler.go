package ui

import (
	"context"
	"sync"

	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/jotframe/pkg/frame"

	watchaskEvent "github.com/watchask/watchask/watchask/event"
)

type Handler struct {
}

func NewHandler() *Handler {
	return &Handler{}
}

func (r *Handler) RespondsTo(event partybus.Event) bool {
	switch event.Type {
	case watchaskEvent.TranscriptFetchStarted,
		watchaskEvent.QuestionGenerationStarted:
		return true
	default:
		return false
	}
}

func (r *Handler) Handle(ctx context.Context, fr *frame.Frame, event partybus.Event, wg *sync.WaitGroup) error {
	switch event.Type {
	case watchaskEvent.TranscriptFetchStarted:
		return r.TranscriptFetchStartedHandler(ctx, fr, event, wg)
	case watchaskEvent.QuestionGenerationStarted:
		return r.QuestionGenerationStartedHandler(ctx, fr, event, wg)
	}
	return nil
}
