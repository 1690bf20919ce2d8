package lawfinder

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMaxChars is the default cap on the document excerpt embedded in a
// prompt, in characters.
const DefaultMaxChars = 15000

// TruncationMarker is appended to an excerpt when the sanitized text
// exceeded the cap, so the model knows it is reading a prefix.
const TruncationMarker = "\n[TRUNCATED]"

// Prompt is the complete instruction payload for one model invocation.
type Prompt struct {
	System string
	User   string
}

const systemInstruction = `You are a legal data extraction assistant. Extract precise, citation-ready structured fields from the court decision provided. Prioritize trial, decision, and hearing dates over filing or citation dates. Only report facts stated in the document; when a field cannot be determined, say so in the confidence notes rather than guessing.`

// BuildPrompt composes the instruction payload for one document. It is pure
// and deterministic given its inputs.
func BuildPrompt(relPath string, ec ExtractionContext, maxChars int) Prompt {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Source: %s\n", relPath)
	fmt.Fprintf(&sb, "Case title: %s\n", ec.Title)
	if ec.Date != "" {
		fmt.Fprintf(&sb, "Decision date: %s\n", ec.Date)
	}
	sb.WriteString("\nDocument:\n")
	sb.WriteString(Excerpt(ec.PlainText, maxChars))
	return Prompt{
		System: systemInstruction,
		User:   sb.String(),
	}
}

// Excerpt returns text capped at maxChars characters. When the text exceeds
// the cap the result is the prefix of exactly maxChars characters with
// TruncationMarker appended. maxChars <= 0 selects DefaultMaxChars.
func Excerpt(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	return string([]rune(text)[:maxChars]) + TruncationMarker
}

// TextLength reports the length of text in characters. Record metadata uses
// this, measured on the untruncated sanitized text.
func TextLength(text string) int {
	return utf8.RuneCountInString(text)
}
