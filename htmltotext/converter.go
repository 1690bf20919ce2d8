// Package htmltotext converts raw HTML into whitespace-normalized plain
// text suitable for heuristics and prompt excerpts. It is built on
// html-to-markdown; the markdown syntax the library emits is stripped back
// out so only readable text remains.
package htmltotext

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/kbaidoo/lawfinder"
)

var (
	imageRE    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRE     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	headingRE  = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	escapeRE   = regexp.MustCompile("\\\\([\\\\`*_{}\\[\\]()#+\\-.!|])")
	hspaceRE   = regexp.MustCompile(`[ \t\x{00a0}]+`)
	blankRunRE = regexp.MustCompile(`\n{3,}`)
)

// Ensure Converter implements lawfinder.Converter at compile time.
var _ lawfinder.Converter = (*Converter)(nil)

// Converter converts HTML to plain text. Scripts, styles and images are
// dropped; anchor text is kept but link targets are discarded.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into normalized plain text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", lawfinder.Errorf(lawfinder.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return normalize(md), nil
}

// normalize strips markdown syntax and squeezes whitespace while keeping
// line structure, which the title heuristics depend on.
func normalize(md string) string {
	text := imageRE.ReplaceAllString(md, " ")
	text = linkRE.ReplaceAllString(text, "$1")
	text = headingRE.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "**", "")
	text = escapeRE.ReplaceAllString(text, "$1")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(hspaceRE.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = blankRunRE.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
