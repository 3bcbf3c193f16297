// Package extractor strips navigational chrome from fetched HTML before it
// is handed to the Markdown renderer.
package extractor

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// excludedSelector matches the tags that never carry page content. Removal is
// the only filtering step: everything outside these tags is kept verbatim,
// including sidebars that are not marked up as <aside>.
const excludedSelector = "nav, aside, footer, script, style"

// StripChrome parses raw HTML, removes every element matching the exclusion
// set (nested occurrences included), and returns the remaining document as an
// HTML string.
func StripChrome(raw []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(excludedSelector).Remove()

	html, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize HTML: %w", err)
	}
	return html, nil
}
