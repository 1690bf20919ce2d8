package lawfinder

// Prosecution categories accepted by the extraction contract.
const (
	ProsecutionState   = "state"
	ProsecutionPrivate = "private"
	ProsecutionCivil   = "civil"
	ProsecutionUnknown = "unknown"
)

// ProsecutionTypes lists every accepted prosecution category, in the order
// they appear in the response schema.
var ProsecutionTypes = []string{
	ProsecutionState,
	ProsecutionPrivate,
	ProsecutionCivil,
	ProsecutionUnknown,
}

// Judge is a single member of the panel that heard a case.
type Judge struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// Jurisdiction identifies the court that decided a case. Both fields are
// optional; the object itself is always present on a valid record.
type Jurisdiction struct {
	Court   string `json:"court,omitempty"`
	Country string `json:"country,omitempty"`
}

// CaseRecord is the structured extraction contract returned by the model
// capability. Every non-omitempty field is required and its constraints are
// enforced by the schema validator before a record is accepted.
type CaseRecord struct {
	Summary             string       `json:"summary"`
	LegalKeywords       []string     `json:"legalKeywords"`
	Topics              []string     `json:"topics"`
	Verdict             string       `json:"verdict"`
	WinningSide         string       `json:"winningSide"`
	ProsecutionType     string       `json:"prosecutionType"`
	Judges              []Judge      `json:"judges"`
	Jurisdiction        Jurisdiction `json:"jurisdiction"`
	CaseType            string       `json:"caseType,omitempty"`
	TrialDate           string       `json:"trialDate,omitempty"`
	Citations           []string     `json:"citations,omitempty"`
	RationaleHighlights []string     `json:"rationaleHighlights,omitempty"`
	ConfidenceNotes     string       `json:"confidenceNotes,omitempty"`
}
