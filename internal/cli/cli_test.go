package cli_test

import (
	"testing"

	"github.com/kawa454/otoshi/internal/cli"
)

func TestParseArgs_URLOnly(t *testing.T) {
	t.Parallel()
	args, err := cli.ParseArgs([]string{"https://example.com/file.txt"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.URL != "https://example.com/file.txt" {
		t.Errorf("unexpected URL: %q", args.URL)
	}
	if args.Output != "" {
		t.Errorf("expected empty output override, got %q", args.Output)
	}
}

func TestParseArgs_OutputOverride_ShortAndLong(t *testing.T) {
	t.Parallel()
	for _, flagName := range []string{"-O", "-output", "--output"} {
		args, err := cli.ParseArgs([]string{flagName, "custom.txt", "https://example.com/file.txt"})
		if err != nil {
			t.Fatalf("ParseArgs with %s: %v", flagName, err)
		}
		if args.Output != "custom.txt" {
			t.Errorf("%s: expected output custom.txt, got %q", flagName, args.Output)
		}
	}
}

func TestParseArgs_MissingURL(t *testing.T) {
	t.Parallel()
	if _, err := cli.ParseArgs([]string{}); err == nil {
		t.Fatal("expected error for missing URL, got nil")
	}
	if _, err := cli.ParseArgs([]string{"-O", "out.txt"}); err == nil {
		t.Fatal("expected error for missing URL with flags, got nil")
	}
}

func TestParseArgs_ExtraPositionalsRejected(t *testing.T) {
	t.Parallel()
	if _, err := cli.ParseArgs([]string{"https://a.example", "https://b.example"}); err == nil {
		t.Fatal("expected error for extra positional args, got nil")
	}
}

func TestParseArgs_BackendAndHistory(t *testing.T) {
	t.Parallel()
	args, err := cli.ParseArgs([]string{"-backend", "chromedp", "-history", "dl.db", "https://example.com"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.Backend != "chromedp" {
		t.Errorf("expected backend chromedp, got %q", args.Backend)
	}
	if args.HistoryPath != "dl.db" {
		t.Errorf("expected history path dl.db, got %q", args.HistoryPath)
	}
}

func TestParseArgs_ListMode(t *testing.T) {
	t.Parallel()
	// -list needs no URL but does need -history
	args, err := cli.ParseArgs([]string{"-list", "-history", "dl.db"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !args.List {
		t.Error("expected List to be set")
	}

	if _, err := cli.ParseArgs([]string{"-list"}); err == nil {
		t.Fatal("expected error for -list without -history, got nil")
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	t.Parallel()
	if _, err := cli.ParseArgs([]string{"-nope", "https://example.com"}); err == nil {
		t.Fatal("expected error for unknown flag, got nil")
	}
}
