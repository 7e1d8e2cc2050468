package webclient

import "github.com/kawa454/otoshi/internal/logging"

// RegisterDefaultBackends registers the default nethttp and chromedp backends.
// Call this early in main() to make backends available to NewWebClient.
func RegisterDefaultBackends() {
	RegisterBackend(string(BackendNetHTTP), func(cfg Config, logger logging.Logger) (WebClient, error) {
		return NewNetHTTPClient(cfg, logger, nil)
	})

	RegisterBackend(string(BackendChromedp), func(cfg Config, logger logging.Logger) (WebClient, error) {
		return NewChromedpClient(cfg, logger)
	})
}
