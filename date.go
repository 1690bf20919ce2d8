package lawfinder

import (
	"regexp"
	"strings"
)

// dateScanWindow limits the date scan to the document header, where
// judgment dates appear in this corpus.
const dateScanWindow = 8000

// ordinalGapRE rejoins ordinal suffixes separated from their day by tag
// stripping, e.g. "15<sup>TH</sup>" which normalizes to "15 TH".
var ordinalGapRE = regexp.MustCompile(`(?i)(\d)\s+(st|nd|rd|th)\b`)

const monthNames = `january|february|march|april|may|june|july|august|september|october|november|december`

const monthAbbrevOrName = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

// dateRule is one step of the date scan. Rules are tried in order over the
// same normalized text; the first match wins and no later rule is consulted.
type dateRule struct {
	name string
	re   *regexp.Regexp
	// group selects the submatch to return; 0 returns the whole match.
	group int
}

// dateRules in precedence order: a bracketed numeric date adjacent to the
// caption, a labelled DATE line, a full month-name date, and an
// ordinal-suffixed day with a numeric or abbreviated month.
var dateRules = []dateRule{
	{
		name: "bracketed",
		re:   regexp.MustCompile(`\[\s*\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\s*\]`),
	},
	{
		name:  "labelled",
		re:    regexp.MustCompile(`DATE\s*[:\-]\s*([A-Z0-9][A-Z0-9 ,.']*?(?:19|20)\d{2})`),
		group: 1,
	},
	{
		name: "month-name",
		re:   regexp.MustCompile(`(?i)(?:` + monthNames + `)\s+\d{1,2}(?:st|nd|rd|th)?\s*,?\s+(?:19|20)\d{2}`),
	},
	{
		name: "ordinal",
		re:   regexp.MustCompile(`(?i)\d{1,2}(?:st|nd|rd|th)\s+(?:\d{1,2}|` + monthAbbrevOrName + `)\.?\s*,?\s+(?:19|20)\d{2}`),
	},
}

// ExtractDate derives a decision date from raw markup. The matched text is
// returned verbatim (brackets included for the bracketed rule); no parsing
// or normalization is attempted. Reports false when no rule matched.
func ExtractDate(rawHTML string) (string, bool) {
	text := normalizeMarkup(rawHTML)
	if len(text) > dateScanWindow {
		text = text[:dateScanWindow]
	}
	for _, rule := range dateRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return strings.TrimSpace(m[rule.group]), true
	}
	return "", false
}

// normalizeMarkup strips scripts, styles and tags and collapses whitespace,
// leaving flowing text for the date rules to scan. Dates split across inline
// tags (superscript ordinals and the like) survive as contiguous text.
func normalizeMarkup(rawHTML string) string {
	s := scriptBlockRE.ReplaceAllString(rawHTML, " ")
	s = styleBlockRE.ReplaceAllString(s, " ")
	s = htmlTagRE.ReplaceAllString(s, " ")
	s = decodeEntities(s)
	s = strings.TrimSpace(spaceRE.ReplaceAllString(s, " "))
	return ordinalGapRE.ReplaceAllString(s, "$1$2")
}
