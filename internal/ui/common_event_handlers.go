package ui

import (
	"fmt"
	"io"

	"github.com/wagoodman/go-partybus"

	watchaskEventParsers "github.com/watchask/watchask/watchask/event/parsers"
)

func handleQuestionGenerationFinished(event partybus.Event, reportOutput io.Writer) error {
	// show the report to stdout
	pres, err := watchaskEventParsers.ParseQuestionGenerationFinished(event)
	if err != nil {
		return fmt.Errorf("bad QuestionGenerationFinished event: %w", err)
	}

	if err := pres.Present(reportOutput); err != nil {
		return fmt.Errorf("unable to show question report: %w", err)
	}
	return nil
}

func handleNonRootCommandFinished(event partybus.Event, reportOutput io.Writer) error {
	// show the report to stdout
	result, err := watchaskEventParsers.ParseNonRootCommandFinished(event)
	if err != nil {
		return fmt.Errorf("bad NonRootCommandFinished event: %w", err)
	}

	if _, err := reportOutput.Write([]byte(*result)); err != nil {
		return fmt.Errorf("unable to show command output: %w", err)
	}
	return nil
}
