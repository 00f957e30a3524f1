package monitor

import "github.com/wagoodman/go-progress"

// Generation exposes the live state of a question-generation run for UI consumption.
type Generation struct {
	ChunksProcessed     progress.Monitorable
	QuestionsDiscovered progress.Monitorable
	Rejected            progress.Monitorable
	Fallbacks           progress.Monitorable
}
