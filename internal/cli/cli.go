package cli

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"
)

// CLIArgs are the command-line arguments for a single invocation.
// Keep this small for now — add fields as modules need them.
type CLIArgs struct {
	// URL is the resource to fetch (positional).
	URL string

	// Output is the destination filename override; empty means derive it
	// from the URL path.
	Output string

	// Backend selects the webclient backend; empty means the default.
	Backend string

	// HistoryPath, when set, enables the SQLite download log at that path.
	HistoryPath string

	// List prints recent history entries instead of downloading.
	List bool

	// Verbose enables debug-level logging.
	Verbose bool

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

func newFlagSet(parsed *CLIArgs) *flag.FlagSet {
	fs := flag.NewFlagSet("otoshi", flag.ContinueOnError)
	fs.StringVar(&parsed.Output, "O", "", "Write document to FILE instead of the URL-derived name")
	fs.StringVar(&parsed.Output, "output", "", "Alias for -O")
	fs.StringVar(&parsed.Backend, "backend", "", "Webclient backend: nethttp|chromedp (default nethttp)")
	fs.StringVar(&parsed.HistoryPath, "history", "", "Record downloads in the SQLite database at FILE")
	fs.BoolVar(&parsed.List, "list", false, "Print recent history entries instead of downloading (requires -history)")
	fs.BoolVar(&parsed.Verbose, "verbose", false, "Enable debug logging")
	return fs
}

// Usage returns the help text. Kept out of ParseArgs so parsing stays silent
// in tests and the caller decides where help goes.
func Usage() string {
	var buf bytes.Buffer
	fs := newFlagSet(&CLIArgs{})
	fs.SetOutput(&buf)
	fmt.Fprintf(&buf, "Usage: otoshi [flags] URL\n\n")
	fs.PrintDefaults()
	return buf.String()
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by
// passing arbitrary slices. The function is deterministic and does not read
// os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	var parsed CLIArgs
	fs := newFlagSet(&parsed)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		// Flag parsing errors are useful to return to caller
		return nil, err
	}

	parsed.URL = strings.TrimSpace(fs.Arg(0))
	parsed.RawArgs = args

	if parsed.List {
		if parsed.HistoryPath == "" {
			return nil, fmt.Errorf("-list requires -history")
		}
		return &parsed, nil
	}

	if parsed.URL == "" {
		return nil, fmt.Errorf("missing required URL argument")
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("unexpected extra arguments: %v", fs.Args()[1:])
	}

	return &parsed, nil
}
