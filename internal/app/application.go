package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kawa454/otoshi/internal/cli"
	"github.com/kawa454/otoshi/internal/download"
	"github.com/kawa454/otoshi/internal/history"
	"github.com/kawa454/otoshi/internal/logging"
	"github.com/kawa454/otoshi/internal/webclient"
)

// Application is the runtime state container. It holds config, parsed CLI
// args and the shared logger, and wires the concrete services together for
// one invocation. Pass Application into modules that need access to the
// global state rather than using package-level variables.
type Application struct {
	Config *Config
	Args   *cli.CLIArgs
	Logger logging.Logger

	// Out receives user-facing output (progress lines, history listing).
	Out io.Writer
}

// NewApplication constructs an Application from the provided parts.
// Keep the constructor simple: pass already-constructed parts so this
// function is easy to test.
func NewApplication(cfg *Config, args *cli.CLIArgs, logger logging.Logger) *Application {
	return &Application{
		Config: cfg,
		Args:   args,
		Logger: logger,
		Out:    os.Stdout,
	}
}

// Run executes the invocation: either the history listing or a single
// download. The returned error is terminal — nothing is retried.
func (a *Application) Run(ctx context.Context) error {
	if a == nil {
		return errors.New("application is nil")
	}

	if a.Args.List {
		return a.runList(ctx)
	}
	return a.runDownload(ctx)
}

func (a *Application) runDownload(ctx context.Context) error {
	wc, err := webclient.NewWebClient(a.Config.WebClientCfg, a.Logger)
	if err != nil {
		return err
	}
	defer wc.Close()

	d := download.New(wc, a.Logger)
	d.SetOutput(a.Out)

	if a.Config.HistoryPath != "" {
		log, err := history.Open(a.Config.HistoryPath, a.Logger)
		if err != nil {
			return err
		}
		defer log.Close()
		d.SetRecorder(log)
	}

	return d.Download(ctx, a.Args.URL, a.Args.Output)
}

func (a *Application) runList(ctx context.Context) error {
	log, err := history.Open(a.Config.HistoryPath, a.Logger)
	if err != nil {
		return err
	}
	defer log.Close()

	entries, err := log.List(ctx, a.Config.HistoryLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.Out, "history is empty")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(a.Out, "%s  %7d  %3d  %s <- %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Size, e.StatusCode, e.Filename, e.URL)
	}
	return nil
}
