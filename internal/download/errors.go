package download

import "fmt"

// The download operation fails in exactly four ways. Each failure kind is a
// distinct error type carrying its underlying cause, so callers can branch
// with errors.As instead of matching message text.

// TransportError reports that the request could not be sent or the response
// could not be received (DNS failure, refused connection, timeout, URL
// rejected by the transport).
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a response with a status code outside [200,299].
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Failed to download: HTTP %d", e.Code)
}

// ParseError reports that the URL failed the structural re-parse performed
// after a successful response.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FileError reports a failure creating or writing the destination file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
