package download

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// pageTitle extracts the <title> of an HTML payload for the debug log.
// Non-HTML content types and unparseable bodies yield "".
func pageTitle(contentType string, body []byte) string {
	if !strings.Contains(strings.ToLower(contentType), "html") {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
