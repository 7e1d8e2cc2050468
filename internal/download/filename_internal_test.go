package download

import (
	"net/url"
	"testing"
)

func TestRemoteFilename(t *testing.T) {
	t.Parallel()
	cases := []struct {
		rawURL string
		want   string
	}{
		{"https://host/dir/file.txt", "file.txt"},
		{"https://host/file.txt", "file.txt"},
		{"https://host/dir/", "dir"},
		{"https://host/a/b/c/", "c"},
		{"https://host/", FallbackFilename},
		{"https://host", FallbackFilename},
		{"https://host/file.txt?x=1#frag", "file.txt"},
	}

	for _, tc := range cases {
		u, err := url.Parse(tc.rawURL)
		if err != nil {
			t.Fatalf("url.Parse(%q): %v", tc.rawURL, err)
		}
		if got := remoteFilename(u); got != tc.want {
			t.Errorf("remoteFilename(%q) = %q, want %q", tc.rawURL, got, tc.want)
		}
	}
}

func TestPageTitle(t *testing.T) {
	t.Parallel()
	html := []byte("<html><head><title> My Page </title></head><body></body></html>")

	if got := pageTitle("text/html; charset=utf-8", html); got != "My Page" {
		t.Errorf("expected title My Page, got %q", got)
	}
	if got := pageTitle("application/octet-stream", html); got != "" {
		t.Errorf("expected empty title for non-html content type, got %q", got)
	}
	if got := pageTitle("text/html", []byte("no title here")); got != "" {
		t.Errorf("expected empty title for titleless payload, got %q", got)
	}
}
