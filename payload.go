package lawfinder

import "time"

// Metadata describes how and when an output record was produced.
type Metadata struct {
	SourcePath      string    `json:"sourcePath"`
	Model           string    `json:"model"`
	ProcessedAt     time.Time `json:"processedAt"`
	PlainTextLength int       `json:"plainTextLength"`
}

// OutputPayload is the persisted record: the validated CaseRecord fields
// plus the resolved title and date and a metadata block. One payload is
// written per input document.
type OutputPayload struct {
	CaseTitle           string       `json:"caseTitle"`
	CaseType            string       `json:"caseType,omitempty"`
	TrialDate           *string      `json:"trialDate"`
	Summary             string       `json:"summary"`
	LegalKeywords       []string     `json:"legalKeywords"`
	Topics              []string     `json:"topics"`
	Verdict             string       `json:"verdict"`
	WinningSide         string       `json:"winningSide"`
	ProsecutionType     string       `json:"prosecutionType"`
	Judges              []Judge      `json:"judges"`
	Jurisdiction        Jurisdiction `json:"jurisdiction"`
	Citations           []string     `json:"citations"`
	RationaleHighlights []string     `json:"rationaleHighlights"`
	ConfidenceNotes     *string      `json:"confidenceNotes"`
	Metadata            Metadata     `json:"metadata"`
}

// BuildOutputPayload merges a validated record with heuristic results and
// run metadata. The model-provided trial date takes precedence over the
// heuristic date; optional arrays default to empty, confidence notes to
// null. The metadata timestamp is the wall-clock time of assembly.
func BuildOutputPayload(rec *CaseRecord, title, heuristicDate, relPath, model string, plainTextLen int) *OutputPayload {
	p := &OutputPayload{
		CaseTitle:           title,
		CaseType:            rec.CaseType,
		Summary:             rec.Summary,
		LegalKeywords:       rec.LegalKeywords,
		Topics:              rec.Topics,
		Verdict:             rec.Verdict,
		WinningSide:         rec.WinningSide,
		ProsecutionType:     rec.ProsecutionType,
		Judges:              rec.Judges,
		Jurisdiction:        rec.Jurisdiction,
		Citations:           rec.Citations,
		RationaleHighlights: rec.RationaleHighlights,
		Metadata: Metadata{
			SourcePath:      relPath,
			Model:           model,
			ProcessedAt:     time.Now().UTC(),
			PlainTextLength: plainTextLen,
		},
	}

	switch {
	case rec.TrialDate != "":
		p.TrialDate = &rec.TrialDate
	case heuristicDate != "":
		p.TrialDate = &heuristicDate
	}

	if rec.ConfidenceNotes != "" {
		notes := rec.ConfidenceNotes
		p.ConfidenceNotes = &notes
	}
	if p.Citations == nil {
		p.Citations = []string{}
	}
	if p.RationaleHighlights == nil {
		p.RationaleHighlights = []string{}
	}
	if p.Judges == nil {
		p.Judges = []Judge{}
	}

	return p
}
