// ABOUTME: HTML utilities for turning feed descriptions into plain-text summaries
// ABOUTME: Uses goquery for markup and the standard entity table for decoding

package html

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML removes markup from a feed fragment and returns collapsed plain text
func StripHTML(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	if !strings.ContainsAny(fragment, "<>") {
		return CollapseWhitespace(DecodeEntities(fragment))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return CollapseWhitespace(DecodeEntities(fragment))
	}

	doc.Find("script, style, noscript").Remove()

	// Block elements would otherwise glue adjacent words together.
	doc.Find("p, br, div, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return CollapseWhitespace(doc.Text())
}

// DecodeEntities decodes HTML entities, including numeric ones
func DecodeEntities(text string) string {
	return html.UnescapeString(text)
}

// CollapseWhitespace trims and replaces runs of whitespace with a single space
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Truncate shortens text to at most n runes, appending an ellipsis when cut
func Truncate(text string, n int) string {
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "…"
}
