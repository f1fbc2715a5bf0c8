package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/isncg/glad-go/pkg/diag"
)

// Stats holds aggregate statistics about a diagnostics log.
type Stats struct {
	TotalEvents      int
	EventsByStage    map[diag.Stage]int
	EventsByKind     map[diag.Kind]int
	EventsBySeverity map[diag.Severity]int
	Runs             map[string]*RunSummary
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// RunSummary holds statistics for a single generator run.
type RunSummary struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Warnings  int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

// Collect reads every event of path into a Stats.
func Collect(path string) (*Stats, error) {
	reader, err := diag.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByStage:    make(map[diag.Stage]int),
		EventsByKind:     make(map[diag.Kind]int),
		EventsBySeverity: make(map[diag.Severity]int),
		Runs:             make(map[string]*RunSummary),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByStage[event.Stage]++
		stats.EventsByKind[event.Kind]++
		stats.EventsBySeverity[event.Severity]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		run, ok := stats.Runs[event.RunID]
		if !ok {
			run = &RunSummary{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			stats.Runs[event.RunID] = run
		}
		run.Events++
		if event.Severity == diag.SeverityWarning {
			run.Warnings++
		}
		if event.Timestamp.Before(run.FirstSeen) {
			run.FirstSeen = event.Timestamp
		}
		if event.Timestamp.After(run.LastSeen) {
			run.LastSeen = event.Timestamp
		}
	}
	return stats, nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Generator Diagnostics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Severity:")
	for _, s := range []diag.Severity{diag.SeverityWarning, diag.SeverityInfo} {
		if count := stats.EventsBySeverity[s]; count > 0 {
			fmt.Fprintf(w, "  %-22s %d\n", s.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Stage:")
	for _, s := range []diag.Stage{diag.StageModel, diag.StageTables, diag.StageResolve, diag.StageEmit} {
		if count := stats.EventsByStage[s]; count > 0 {
			fmt.Fprintf(w, "  %-22s %d\n", s.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, k := range diag.Kinds() {
		if count := stats.EventsByKind[k]; count > 0 {
			fmt.Fprintf(w, "  %-22s %d\n", k.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Runs: %d\n", len(stats.Runs))
	if len(stats.Runs) == 0 {
		return
	}

	type runInfo struct {
		id    string
		stats *RunSummary
	}
	runs := make([]runInfo, 0, len(stats.Runs))
	for id, rs := range stats.Runs {
		runs = append(runs, runInfo{id, rs})
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].stats.FirstSeen.Before(runs[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, r := range runs {
		fmt.Fprintf(w, "  [%s] %d events, %d warnings, started %s\n",
			shortenRunID(r.id), r.stats.Events, r.stats.Warnings, r.stats.FirstSeen.Format(time.RFC3339))
	}
}
