package renderer

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ToMarkdown converts an HTML fragment to Markdown. The converter defaults
// already match what we need: hyperlinks stay as Markdown links, lines are
// never wrapped to a column width, and unicode text passes through literally.
func ToMarkdown(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}
	return markdown, nil
}
