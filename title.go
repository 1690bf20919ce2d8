package lawfinder

import (
	"html"
	"path/filepath"
	"regexp"
	"strings"
)

// Title candidate bounds. A candidate line must land in
// [titleMinLen, titleMaxLen] after entity decoding and whitespace collapsing,
// and must still exceed titleMinResidual once the trailing bracketed date
// suffix is stripped.
const (
	titleMinLen      = 15
	titleMaxLen      = 200
	titleMinResidual = 10
	titleScanLines   = 50
)

// markupScanWindow limits markup scanning to the head of the document,
// which is where the case caption appears in this corpus.
const markupScanWindow = 5000

// matterScanLines limits the non-adversarial caption scan, which joins
// lines and so would otherwise match deep into the judgment body.
const matterScanLines = 30

// boilerplateMarkers rejects banner text, navigation labels and the
// placeholder image name that litter the scanned region of these documents.
var boilerplateMarkers = []string{
	"pages.gif",
	"law finder",
	"click here",
	"next page",
	"previous page",
	"home page",
}

var (
	spaceRE         = regexp.MustCompile(`\s+`)
	bracketSuffixRE = regexp.MustCompile(`\s*\[[^\]]*\]\s*$`)
	vsSeparatorRE   = regexp.MustCompile(`(?i)\s(?:v\.?|vrs\.?|versus)\s`)
	vsPhraseRE      = regexp.MustCompile(`(?i)[A-Z][A-Z0-9&.,'()\- ]+\s(?:v\.?|vrs\.?|versus)\s+[A-Z][A-Z0-9&.,'()\- ]+`)
	boldTagRE       = regexp.MustCompile(`(?is)<b[^>]*>(.*?)</b>`)
	boldFontRE      = regexp.MustCompile(`(?is)<font[^>]*font-weight:\s*bold[^>]*>(.*?)</font>`)
	htmlTagRE       = regexp.MustCompile(`<[^>]+>`)
	scriptBlockRE   = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleBlockRE    = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	vsLineRE        = regexp.MustCompile(`(?i)^(?:v|vrs|versus)\.?$`)
	captionPartyRE  = regexp.MustCompile(`^[A-Z][A-Z0-9&.,'()\- ]+`)
	matterRE        = regexp.MustCompile(`(?i)IN\s+THE\s+MATTER\s+OF[^.]+`)
)

// captionMetadataWords mark caption lines that carry a role label or court
// metadata instead of a party name.
var captionMetadataWords = []string{
	"PLAINTIFF",
	"DEFENDANT",
	"RESPONDENT",
	"APPELLANT",
	"CORAM",
	"JUDGMENT",
}

// markupTitleRule is one step in the markup scan: it produces candidate
// phrases from raw markup. Rules are evaluated in order and the first
// candidate that passes cleanTitleCandidate wins.
type markupTitleRule struct {
	name       string
	candidates func(markup string) []string
}

// markupTitleRules is the ordered markup rule chain: a generic capitalized
// vs-phrase anywhere in the scan window, then bold-tag-wrapped phrases, then
// bold-styled font-tag-wrapped phrases.
var markupTitleRules = []markupTitleRule{
	{name: "generic", candidates: genericVsPhrases},
	{name: "bold", candidates: taggedVsPhrases(boldTagRE)},
	{name: "bold-font", candidates: taggedVsPhrases(boldFontRE)},
}

// ExtractTitle derives a case title from a document. A plain-text match in
// the first lines always wins over a markup-based match. Reports false when
// neither source yields an acceptable candidate; the caller is expected to
// fall back to TitleFromFilename.
func ExtractTitle(rawHTML, plainText string) (string, bool) {
	if plainText != "" {
		if title, ok := titleFromPlainText(plainText); ok {
			return title, true
		}
	}
	return titleFromMarkup(rawHTML)
}

// titleFromPlainText scans the first titleScanLines lines for a line that
// looks like a case caption: acceptable length and a vs-separator token.
// When no single line qualifies it falls back to captions split over three
// lines, then to non-adversarial "IN THE MATTER OF" captions.
func titleFromPlainText(plainText string) (string, bool) {
	lines := strings.Split(plainText, "\n")
	if len(lines) > titleScanLines {
		lines = lines[:titleScanLines]
	}
	for _, line := range lines {
		decoded := decodeEntities(line)
		if !vsSeparatorRE.MatchString(decoded) {
			continue
		}
		if title, ok := cleanTitleCandidate(decoded); ok {
			return title, true
		}
	}
	if title, ok := splitCaptionTitle(lines); ok {
		return title, true
	}
	return matterTitle(lines)
}

// splitCaptionTitle handles captions laid out over three lines, with the
// vs-token alone on the middle line. The surrounding lines must each yield
// a plausible party name.
func splitCaptionTitle(lines []string) (string, bool) {
	for i := 1; i+1 < len(lines); i++ {
		mid := strings.TrimSpace(decodeEntities(lines[i]))
		if !vsLineRE.MatchString(mid) {
			continue
		}
		first := captionParty(lines[i-1])
		second := captionParty(lines[i+1])
		if first == "" || second == "" {
			continue
		}
		if title, ok := cleanTitleCandidate(first + " " + mid + " " + second); ok {
			return title, true
		}
	}
	return "", false
}

// captionParty extracts a party name from a caption line. Lines carrying a
// role label or court metadata instead of a name are rejected.
func captionParty(line string) string {
	s := strings.TrimSpace(decodeEntities(line))
	m := captionPartyRE.FindString(s)
	if m == "" {
		return ""
	}
	m = strings.TrimSpace(spaceRE.ReplaceAllString(m, " "))
	upper := strings.ToUpper(m)
	for _, word := range captionMetadataWords {
		if strings.Contains(upper, word) {
			return ""
		}
	}
	return m
}

// matterTitle matches non-adversarial captions ("IN THE MATTER OF ...")
// across the joined lead lines, stopping at the first period.
func matterTitle(lines []string) (string, bool) {
	if len(lines) > matterScanLines {
		lines = lines[:matterScanLines]
	}
	joined := decodeEntities(strings.Join(lines, " "))
	m := matterRE.FindString(joined)
	if m == "" {
		return "", false
	}
	return cleanTitleCandidate(m)
}

// titleFromMarkup runs the ordered markup rule chain over the head of the
// raw document.
func titleFromMarkup(rawHTML string) (string, bool) {
	markup := scriptBlockRE.ReplaceAllString(rawHTML, "")
	markup = styleBlockRE.ReplaceAllString(markup, "")
	if len(markup) > markupScanWindow {
		markup = markup[:markupScanWindow]
	}
	for _, rule := range markupTitleRules {
		for _, candidate := range rule.candidates(markup) {
			if title, ok := cleanTitleCandidate(candidate); ok {
				return title, true
			}
		}
	}
	return "", false
}

func genericVsPhrases(markup string) []string {
	text := decodeEntities(htmlTagRE.ReplaceAllString(markup, " "))
	return vsPhraseRE.FindAllString(text, -1)
}

// taggedVsPhrases returns a candidate function that looks for vs-phrases
// inside the contents of a wrapping tag matched by re.
func taggedVsPhrases(re *regexp.Regexp) func(string) []string {
	return func(markup string) []string {
		var out []string
		for _, m := range re.FindAllStringSubmatch(markup, -1) {
			inner := decodeEntities(htmlTagRE.ReplaceAllString(m[1], " "))
			if phrase := vsPhraseRE.FindString(inner); phrase != "" {
				out = append(out, phrase)
			}
		}
		return out
	}
}

// cleanTitleCandidate decodes entities, collapses whitespace and applies the
// shared acceptance checks: length bounds, boilerplate exclusion, and a
// minimum residual length after stripping a trailing bracketed date suffix.
func cleanTitleCandidate(raw string) (string, bool) {
	s := decodeEntities(raw)
	s = strings.TrimSpace(spaceRE.ReplaceAllString(s, " "))
	if n := len(s); n < titleMinLen || n > titleMaxLen {
		return "", false
	}
	if isBoilerplate(s) {
		return "", false
	}
	s = strings.TrimSpace(bracketSuffixRE.ReplaceAllString(s, ""))
	if len(s) <= titleMinResidual {
		return "", false
	}
	return s, true
}

// decodeEntities resolves HTML entities and maps non-breaking spaces to
// plain spaces so that separator detection and length checks see real
// whitespace.
func decodeEntities(s string) string {
	s = html.UnescapeString(s)
	return strings.ReplaceAll(s, " ", " ")
}

// PlaceholderTitle reports whether a stored title is missing or consists of
// boilerplate (such as the placeholder image name), meaning a record is
// worth revisiting.
func PlaceholderTitle(s string) bool {
	return strings.TrimSpace(s) == "" || isBoilerplate(s)
}

func isBoilerplate(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range boilerplateMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// collectionPrefixes are court-collection folder names that leak into
// flattened filenames in this corpus.
var collectionPrefixes = []string{
	"COURT OF APPEAL__",
	"SUPREME COURT__",
	"WACA__",
	"WALR__",
}

var yearishRE = regexp.MustCompile(`^(19|20)\d{2}`)

// TitleFromFilename derives a last-resort title from the filename stem of a
// relative document path. It strips known collection prefixes and flattened
// folder segments (years, "TEMP") and keeps the last meaningful segment.
// Never returns an empty string for a non-empty path.
func TitleFromFilename(relPath string) string {
	stem := filepath.Base(relPath)
	stem = strings.TrimSuffix(stem, filepath.Ext(stem))

	base := stem
	for _, prefix := range collectionPrefixes {
		if strings.HasPrefix(base, prefix) {
			base = strings.TrimPrefix(base, prefix)
			break
		}
	}

	if parts := strings.Split(base, "__"); len(parts) > 1 {
		for i := len(parts) - 1; i >= 0; i-- {
			p := strings.TrimSpace(parts[i])
			if p == "" || p == "TEMP" || yearishRE.MatchString(p) {
				continue
			}
			base = p
			break
		}
	}

	base = strings.ReplaceAll(base, "__", " ")
	base = strings.TrimSpace(spaceRE.ReplaceAllString(base, " "))
	if base == "" {
		return stem
	}
	return base
}
