// Command glad-diag views and analyzes glad-gen diagnostics logs.
//
// Logs are written by glad-gen when run with -diag <file> or with
// diagnostics set in its configuration.
//
// Usage:
//
//	glad-diag <command> [flags] <file.dlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View only warnings
//	glad-diag view -severity warn gl.dlog
//
//	# View the groups that were renamed
//	glad-diag view -kind RenamedType gl.dlog
//
//	# Keep the events of one run
//	glad-diag filter -run-id 0f8fad5b-d9cb-469f-a165-70867728950e -o run.dlog gl.dlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/isncg/glad-go/cmd/glad-diag/commands"
)

const usage = `glad-diag - glad-gen diagnostics analyzer

Usage:
  glad-diag <command> [flags] <file.dlog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "glad-diag <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// filterFlags registers the flags shared by view and filter.
func filterFlags(fs *flag.FlagSet) *commands.FilterOptions {
	opts := &commands.FilterOptions{}
	fs.StringVar(&opts.RunID, "run-id", "", "Filter by run ID")
	fs.StringVar(&opts.Stage, "stage", "", "Filter by stage (model, tables, resolve, emit)")
	fs.StringVar(&opts.Kind, "kind", "", "Filter by kind (e.g. AmbiguousGroupType)")
	fs.StringVar(&opts.Severity, "severity", "", "Filter by severity (info, warn)")
	fs.StringVar(&opts.Subject, "subject", "", "Filter by subject substring")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	return opts
}

// parseArgs parses args and returns the log file path, exiting on error.
func parseArgs(fs *flag.FlagSet, args []string) string {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `glad-diag view - View log file in human-readable format

Usage:
  glad-diag view [flags] <file.dlog>

Flags:
`)
		fs.PrintDefaults()
	}
	opts := filterFlags(fs)
	path := parseArgs(fs, args)

	if err := commands.RunView(path, *opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `glad-diag export - Export log file to JSON or CSV format

Usage:
  glad-diag export [flags] <file.dlog>

Flags:
`)
		fs.PrintDefaults()
	}
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	path := parseArgs(fs, args)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `glad-diag filter - Filter log file and write to new file

Usage:
  glad-diag filter [flags] <file.dlog>

Flags:
`)
		fs.PrintDefaults()
	}
	output := fs.String("o", "", "Output file (required)")
	opts := filterFlags(fs)
	path := parseArgs(fs, args)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunFilter(path, *output, *opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `glad-diag stats - Show statistics about the log file

Usage:
  glad-diag stats <file.dlog>

`)
	}
	path := parseArgs(fs, args)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
