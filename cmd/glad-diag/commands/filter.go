package commands

import (
	"fmt"
	"io"

	"github.com/isncg/glad-go/pkg/diag"
)

// RunFilter writes the events of path matching opts to output and reports
// the count on w.
func RunFilter(path, output string, opts FilterOptions, w io.Writer) error {
	filter, err := BuildFilter(opts)
	if err != nil {
		return err
	}

	reader, err := diag.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := diag.NewFileLogger(output)
	if err != nil {
		return fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		logger.Log(event)
		count++
	}

	fmt.Fprintf(w, "Filtered %d events to %s\n", count, output)
	return nil
}
