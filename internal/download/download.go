package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/kawa454/otoshi/internal/logging"
	"github.com/kawa454/otoshi/internal/webclient"
)

// FallbackFilename is written when the URL carries no usable path segment.
const FallbackFilename = "index.html"

// Recorder receives a note about each completed download. The history package
// provides the persistent implementation; a nil recorder disables recording.
type Recorder interface {
	Record(ctx context.Context, url, filename string, size int64, statusCode int) error
}

// Downloader performs the whole fetch-and-save sequence for one URL. It holds
// no per-download state and is safe to reuse across calls.
type Downloader struct {
	wc       webclient.WebClient
	logger   logging.Logger
	out      io.Writer
	recorder Recorder
}

// New creates a Downloader on top of the given webclient. Progress lines go
// to stdout until SetOutput is called.
func New(wc webclient.WebClient, logger logging.Logger) *Downloader {
	return &Downloader{
		wc:     wc,
		logger: logger.With(logging.Field{Key: "component", Value: "download"}),
		out:    os.Stdout,
	}
}

// SetOutput redirects the two user-facing progress lines.
func (d *Downloader) SetOutput(w io.Writer) {
	d.out = w
}

// SetRecorder attaches a Recorder that is notified after each success.
func (d *Downloader) SetRecorder(r Recorder) {
	d.recorder = r
}

// Download fetches rawURL and writes the body to a single file. output, when
// non-empty, is used verbatim as the destination; otherwise the name is
// derived from the URL path, falling back to FallbackFilename.
//
// The URL is deliberately not validated before the request: the transport
// sees the raw string first, and the structural re-parse happens only after a
// successful response. That matches the reference ordering, where an invalid
// URL that somehow survives the transport still fails before anything is
// written to disk.
func (d *Downloader) Download(ctx context.Context, rawURL, output string) error {
	if d.wc == nil {
		return errors.New("download: webclient is nil")
	}

	fmt.Fprintf(d.out, "Downloading: %s\n", rawURL)

	resp, err := d.wc.Get(ctx, rawURL)
	if err != nil {
		return &TransportError{URL: rawURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		d.logger.Debug("non-success response",
			logging.Field{Key: "url", Value: rawURL},
			logging.Field{Key: "status", Value: resp.StatusCode})
		return &StatusError{URL: rawURL, Code: resp.StatusCode}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return &ParseError{URL: rawURL, Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return &ParseError{URL: rawURL, Err: errors.New("not an absolute URL")}
	}

	filename := output
	if filename == "" {
		filename = remoteFilename(u)
	}

	if title := pageTitle(resp.Headers.Get("Content-Type"), resp.Body); title != "" {
		d.logger.Debug("page title", logging.Field{Key: "title", Value: title})
	}

	f, err := os.Create(filename)
	if err != nil {
		return &FileError{Path: filename, Err: err}
	}
	if _, err := f.Write(resp.Body); err != nil {
		f.Close()
		return &FileError{Path: filename, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileError{Path: filename, Err: err}
	}

	fmt.Fprintf(d.out, "Downloaded: %s\n", filename)

	if d.recorder != nil {
		if err := d.recorder.Record(ctx, rawURL, filename, int64(len(resp.Body)), resp.StatusCode); err != nil {
			// Recording is best-effort; the file is already on disk.
			d.logger.Warn("failed to record download",
				logging.Field{Key: "url", Value: rawURL},
				logging.Field{Key: "error", Value: err.Error()})
		}
	}

	return nil
}

// remoteFilename derives the destination name from the URL path: the last
// non-empty path segment, or FallbackFilename when there is none.
func remoteFilename(u *url.URL) string {
	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return FallbackFilename
}
