package diag

import (
	"context"
	"log/slog"
)

// SlogAdapter writes diagnostic events to an slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event at Info or Warn level according to its severity.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("stage", event.Stage.String()),
		slog.String("kind", event.Kind.String()),
	}
	if event.Subject != "" {
		attrs = append(attrs, slog.String("subject", event.Subject))
	}
	if len(event.Values) > 0 {
		attrs = append(attrs, slog.Any("values", event.Values))
	}
	if event.RunID != "" {
		attrs = append(attrs, slog.String("run_id", event.RunID))
	}

	level := slog.LevelInfo
	if event.Severity == SeverityWarning {
		level = slog.LevelWarn
	}

	msg := event.Detail
	if msg == "" {
		msg = event.Kind.String()
	}
	a.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
