package event

import "github.com/wagoodman/go-partybus"

const (
	AppUpdateAvailable          partybus.EventType = "watchask-app-update-available"
	TranscriptFetchStarted      partybus.EventType = "watchask-transcript-fetch-started"
	QuestionGenerationStarted   partybus.EventType = "watchask-question-generation-started"
	QuestionGenerationFinished  partybus.EventType = "watchask-question-generation-finished"
	NonRootCommandFinished      partybus.EventType = "watchask-non-root-command-finished"
)
