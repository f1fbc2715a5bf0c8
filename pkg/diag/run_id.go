package diag

type runIDLogger struct {
	next  Logger
	runID string
}

// WithRunID returns a Logger that stamps every event with runID before
// passing it to next.
func WithRunID(next Logger, runID string) Logger {
	return &runIDLogger{next: OrNoop(next), runID: runID}
}

func (l *runIDLogger) Log(event Event) {
	event.RunID = l.runID
	l.next.Log(event)
}
