// Package commands implements the glad-diag CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/isncg/glad-go/pkg/diag"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// FilterOptions holds the filter flags shared by view and filter. Empty
// fields match every event.
type FilterOptions struct {
	RunID     string
	Stage     string
	Kind      string
	Severity  string
	Subject   string
	TimeStart string
	TimeEnd   string
}

// BuildFilter parses the options into a diag.Filter.
func BuildFilter(opts FilterOptions) (diag.Filter, error) {
	filter := diag.Filter{RunID: opts.RunID, Subject: opts.Subject}

	if opts.Stage != "" {
		s, err := diag.ParseStage(opts.Stage)
		if err != nil {
			return filter, err
		}
		filter.Stage = &s
	}
	if opts.Kind != "" {
		k, err := diag.ParseKind(opts.Kind)
		if err != nil {
			return filter, err
		}
		filter.Kind = &k
	}
	if opts.Severity != "" {
		s, err := diag.ParseSeverity(opts.Severity)
		if err != nil {
			return filter, err
		}
		filter.Severity = &s
	}
	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event diag.Event) {
	// timestamp [run:id] SEVERITY STAGE Kind subject
	ts := event.Timestamp.UTC().Format(timeLayout)
	fmt.Fprintf(w, "%s [run:%s] %-4s %-7s %s",
		ts, shortenRunID(event.RunID), event.Severity, event.Stage, event.Kind)
	if event.Subject != "" {
		fmt.Fprintf(w, " %s", event.Subject)
	}
	fmt.Fprintln(w)

	if event.Detail != "" {
		fmt.Fprintf(w, "  %s\n", event.Detail)
	}
	if len(event.Values) > 0 {
		fmt.Fprintf(w, "  Values: %s\n", strings.Join(event.Values, ", "))
	}
	fmt.Fprintln(w)
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// RunView executes the view command.
func RunView(path string, opts FilterOptions, output io.Writer) error {
	filter, err := BuildFilter(opts)
	if err != nil {
		return err
	}

	reader, err := diag.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}
