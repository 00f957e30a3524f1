package ui

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"
	"github.com/wagoodman/go-progress/format"
	"github.com/wagoodman/jotframe/pkg/frame"

	"github.com/watchask/watchask/internal/ui/components"
	watchaskEventParsers "github.com/watchask/watchask/watchask/event/parsers"
)

const maxBarWidth = 50
const statusSet = components.SpinnerDotSet // SpinnerCircleOutlineSet
const completedStatus = "✔"                // "●"
const statusTitleColumn = 31
const tileFormat = color.Bold

var auxInfoFormat = color.HEX("#777777")
var statusTitleTemplate = fmt.Sprintf(" %%s %%-%ds ", statusTitleColumn)

func startProcess() (format.Simple, *components.Spinner) {
	width, _ := frame.GetTerminalSize()
	barWidth := int(0.25 * float64(width))
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	formatter := format.NewSimpleWithTheme(barWidth, format.HeavyNoBarTheme, format.ColorCompleted, format.ColorTodo)
	spinner := components.NewSpinner(statusSet)

	return formatter, &spinner
}

func (r *Handler) TranscriptFetchStartedHandler(ctx context.Context, fr *frame.Frame, event partybus.Event, wg *sync.WaitGroup) error {
	prog, err := watchaskEventParsers.ParseTranscriptFetchStarted(event)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", event.Type, err)
	}

	line, err := fr.Prepend()
	if err != nil {
		return err
	}

	wg.Add(1)

	_, spinner := startProcess()
	stream := progress.Stream(ctx, prog, 150*time.Millisecond)
	title := tileFormat.Sprint("Captions")

	formatFn := func(progress.Progress) {
		spin := color.Magenta.Sprint(spinner.Next())
		auxInfo := auxInfoFormat.Sprintf("[%s]", prog.Stage())
		_, _ = io.WriteString(line, fmt.Sprintf(statusTitleTemplate+"%s", spin, title, auxInfo))
	}

	go func() {
		defer wg.Done()

		formatFn(progress.Progress{})
		for p := range stream {
			formatFn(p)
		}

		spin := color.Green.Sprint(completedStatus)
		auxInfo := auxInfoFormat.Sprintf("[%s]", prog.Stage())
		_, _ = io.WriteString(line, fmt.Sprintf(statusTitleTemplate+"%s", spin, title, auxInfo))
	}()
	return nil
}

func (r *Handler) QuestionGenerationStartedHandler(ctx context.Context, fr *frame.Frame, event partybus.Event, wg *sync.WaitGroup) error {
	monitor, err := watchaskEventParsers.ParseQuestionGenerationStarted(event)
	if err != nil {
		return fmt.Errorf("bad %s event: %w", event.Type, err)
	}

	line, err := fr.Append()
	if err != nil {
		return err
	}

	line2, err := fr.Append()
	if err != nil {
		return err
	}

	wg.Add(1)

	monitors := []progress.Monitorable{
		monitor.ChunksProcessed,
		monitor.QuestionsDiscovered,
		monitor.Rejected,
		monitor.Fallbacks,
	}
	_, spinner := startProcess()
	stream := progress.StreamMonitors(ctx, monitors, 50*time.Millisecond)
	title := tileFormat.Sprint("Generating questions...")
	title2 := tileFormat.Sprint("Summary")

	formatFn := func(chunks, questions, rejected, fallbacks int64) {
		spin := color.Magenta.Sprint(spinner.Next())
		auxInfo := auxInfoFormat.Sprintf("[questions %d]", questions)
		_, _ = io.WriteString(line, fmt.Sprintf(statusTitleTemplate+"%s", spin, title, auxInfo))

		auxInfo2 := auxInfoFormat.Sprintf("[Chunks: %d, Duplicates: %d, Fallbacks: %d]", chunks, rejected, fallbacks)
		_, _ = io.WriteString(line2, fmt.Sprintf(statusTitleTemplate+"%s", spin, title2, auxInfo2))
	}

	go func() {
		defer wg.Done()

		formatFn(0, 0, 0, 0)
		for p := range stream {
			formatFn(p[0], p[1], p[2], p[3])
		}

		spin := color.Green.Sprint(completedStatus)
		title = tileFormat.Sprint("Generated questions")
		auxInfo := auxInfoFormat.Sprintf("[%d questions]", monitor.QuestionsDiscovered.Current())
		_, _ = io.WriteString(line, fmt.Sprintf(statusTitleTemplate+"%s", spin, title, auxInfo))

		auxInfo2 := auxInfoFormat.Sprintf(
			"[Chunks: %d, Duplicates: %d, Fallbacks: %d]",
			monitor.ChunksProcessed.Current(),
			monitor.Rejected.Current(),
			monitor.Fallbacks.Current(),
		)
		_, _ = io.WriteString(line2, fmt.Sprintf(statusTitleTemplate+"%s", spin, title2, auxInfo2))
	}()

	return nil
}
