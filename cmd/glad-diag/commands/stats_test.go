package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/isncg/glad-go/pkg/diag"
)

func TestCollect(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	stats, err := Collect(path)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if stats.TotalEvents != 3 {
		t.Errorf("TotalEvents = %d, want 3", stats.TotalEvents)
	}
	if stats.EventsByStage[diag.StageEmit] != 2 {
		t.Errorf("EMIT events = %d, want 2", stats.EventsByStage[diag.StageEmit])
	}
	if stats.EventsBySeverity[diag.SeverityWarning] != 2 {
		t.Errorf("warnings = %d, want 2", stats.EventsBySeverity[diag.SeverityWarning])
	}
	if len(stats.Runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(stats.Runs))
	}
	run := stats.Runs["0f8fad5b-d9cb-469f-a165-70867728950e"]
	if run.Events != 2 || run.Warnings != 1 {
		t.Errorf("run = %+v", run)
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 3",
		"WARN:",
		"RESOLVE:",
		"AmbiguousGroupType:",
		"DuplicateCommand:",
		"Runs: 2",
		"[0f8fad5b] 2 events, 1 warnings",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "TABLES:") {
		t.Error("stages without events should be omitted")
	}
}

func TestRunStatsEmpty(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output: %s", buf.String())
	}
	if strings.Contains(buf.String(), "Time Range") {
		t.Error("empty log has no time range")
	}
}
