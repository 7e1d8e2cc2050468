package webclient

import "context"

// WebClient is the transport seam: every backend fetches a URL and hands back
// the fully buffered response. The downloader never touches net/http directly.
type WebClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)

	// Get is a convenience method for simple GET requests
	Get(ctx context.Context, url string) (*Response, error)

	Close() error
}
