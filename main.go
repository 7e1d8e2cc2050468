package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/kawa454/otoshi/internal/app"
	"github.com/kawa454/otoshi/internal/cli"
	"github.com/kawa454/otoshi/internal/logging"
	"github.com/kawa454/otoshi/internal/webclient"
)

func main() {
	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(os.Stderr, cli.Usage())
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "otoshi: %v\n", err)
		fmt.Fprint(os.Stderr, cli.Usage())
		os.Exit(1)
	}

	logger := logging.NewStderrLogger("otoshi", args.Verbose)

	webclient.RegisterDefaultBackends()

	cfg := app.DefaultConfig()
	if args.Backend != "" {
		cfg.WebClientCfg.Backend = webclient.Backend(args.Backend)
	}
	cfg.HistoryPath = args.HistoryPath

	application := app.NewApplication(cfg, args, logger)
	if err := application.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "otoshi: %v\n", err)
		os.Exit(1)
	}
}
