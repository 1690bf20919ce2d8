// Package goquery provides lightweight DOM-based text extraction used by
// the backfill path, where running the full converter per record would be
// wasteful.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kbaidoo/lawfinder"
)

// LeadText parses raw HTML and returns up to maxLines non-empty lines of
// body text. Scripts, styles and images are removed before text extraction.
// The result feeds the title heuristics, which only look at the head of a
// document.
func LeadText(html string, maxLines int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", lawfinder.Errorf(lawfinder.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, img").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var lines []string
	for _, raw := range strings.Split(root.Text(), "\n") {
		if len(lines) >= maxLines {
			break
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
