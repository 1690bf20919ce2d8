package lawfinder

import "context"

// Document identifies one input HTML file discovered under the input root.
type Document struct {
	// Path is the absolute path to the file on disk.
	Path string

	// RelPath is the path relative to the configured input root. It is the
	// document's identity: log lines, record metadata and the derived output
	// path all use it.
	RelPath string
}

// ExtractionContext holds everything derived from a document before the
// model is involved: the sanitized plain text and the heuristic title and
// date candidates.
type ExtractionContext struct {
	// PlainText is the full sanitized text of the document. Truncation to
	// the prompt excerpt limit happens later, in the prompt builder, so the
	// untruncated length stays available for record metadata.
	PlainText string

	// Title is the heuristic case title. Never empty: when no heuristic
	// matches it falls back to the filename stem.
	Title string

	// Date is the heuristic decision date, verbatim as matched. Empty when
	// no date rule matched.
	Date string
}

// NewExtractionContext derives the extraction context for a document from
// its raw markup and sanitized plain text.
func NewExtractionContext(doc Document, rawHTML, plainText string) ExtractionContext {
	title, ok := ExtractTitle(rawHTML, plainText)
	if !ok {
		title = TitleFromFilename(doc.RelPath)
	}
	date, _ := ExtractDate(rawHTML)
	return ExtractionContext{
		PlainText: plainText,
		Title:     title,
		Date:      date,
	}
}

// Converter converts raw HTML into whitespace-normalized plain text.
// Scripts, styles and images are dropped entirely; anchor text is kept but
// link targets are discarded.
type Converter interface {
	Convert(html string) (string, error)
}

// CaseExtractor runs the model capability: given a prompt it returns a
// schema-validated case record or fails. Implementations validate the
// model response before returning it.
type CaseExtractor interface {
	Extract(ctx context.Context, prompt Prompt) (*CaseRecord, error)
}

// RecordValidator checks a candidate JSON object against the CaseRecord
// contract. Validation is all-or-nothing: any failing field rejects the
// whole candidate.
type RecordValidator interface {
	Validate(data []byte) (*CaseRecord, error)
}

// RecordWriter persists one output payload per input document, overwriting
// any prior output at the same derived path.
type RecordWriter interface {
	WriteRecord(ctx context.Context, payload *OutputPayload) error
}
