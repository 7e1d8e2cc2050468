package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kawa454/otoshi/internal/demoserver"
	"github.com/kawa454/otoshi/internal/logging"
)

func main() {
	cfg := demoserver.DefaultConfig()
	flag.IntVar(&cfg.Port, "port", cfg.Port, "Port to listen on")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	logger := logging.NewStderrLogger("demoserver", *verbose)

	s := demoserver.New(cfg, logger)
	if err := s.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "demo server failed: %v\n", err)
		os.Exit(1)
	}
}
