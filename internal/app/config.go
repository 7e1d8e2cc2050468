package app

import (
	"github.com/kawa454/otoshi/internal/webclient"
)

// Config contains the runtime configuration shared across internal modules.
// We intentionally keep this small — add more fields later as wiring
// requires them.
type Config struct {
	// WebClientCfg configures the transport backend.
	WebClientCfg webclient.Config

	// HistoryPath enables the SQLite download log when non-empty.
	HistoryPath string

	// HistoryLimit caps how many entries the list mode prints.
	HistoryLimit int
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		WebClientCfg: webclient.Config{
			Backend: webclient.BackendNetHTTP,
		},
		HistoryPath:  "",
		HistoryLimit: 20,
	}
}
