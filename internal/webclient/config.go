package webclient

import "time"

// Backend names a registered WebClient implementation.
type Backend string

const (
	BackendNetHTTP  Backend = "nethttp"
	BackendChromedp Backend = "chromedp"
)

// Config is the minimal set of options required for constructing a WebClient.
type Config struct {
	Backend Backend

	// Timeout bounds a single request. Zero means the backend default (30s).
	// This is an internal default and is not surfaced on the CLI.
	Timeout time.Duration
}

const defaultTimeout = 30 * time.Second

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}
