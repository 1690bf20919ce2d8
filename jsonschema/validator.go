// Package jsonschema validates model output against the CaseRecord
// contract using a declarative JSON Schema document.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kbaidoo/lawfinder"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// CaseRecord field bounds enforced by the schema.
const (
	summaryMinLen      = 40
	keywordMinLen      = 3
	keywordsMinItems   = 3
	keywordsMaxItems   = 12
	topicsMaxItems     = 8
	judgesMaxItems     = 12
	citationsMaxItems  = 20
	highlightsMaxItems = 10
)

// recordSchema is the declarative shape of a CaseRecord. Keeping the
// contract in one machine-checkable document is deliberate: the generic
// validator interprets it, there are no hand-written per-field checks.
var recordSchema = map[string]any{
	"$schema":              "https://json-schema.org/draft/2020-12/schema",
	"type":                 "object",
	"additionalProperties": false,
	"required": []string{
		"summary", "legalKeywords", "topics", "verdict",
		"winningSide", "prosecutionType", "judges", "jurisdiction",
	},
	"properties": map[string]any{
		"summary": map[string]any{
			"type":      "string",
			"minLength": summaryMinLen,
		},
		"legalKeywords": map[string]any{
			"type":     "array",
			"minItems": keywordsMinItems,
			"maxItems": keywordsMaxItems,
			"items": map[string]any{
				"type":      "string",
				"minLength": keywordMinLen,
			},
		},
		"topics": map[string]any{
			"type":     "array",
			"minItems": 1,
			"maxItems": topicsMaxItems,
			"items":    map[string]any{"type": "string", "minLength": 1},
		},
		"verdict":     map[string]any{"type": "string", "minLength": 1},
		"winningSide": map[string]any{"type": "string", "minLength": 1},
		"prosecutionType": map[string]any{
			"type": "string",
			"enum": lawfinder.ProsecutionTypes,
		},
		"judges": map[string]any{
			"type":     "array",
			"maxItems": judgesMaxItems,
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"name"},
				"properties": map[string]any{
					"name": map[string]any{"type": "string", "minLength": 1},
					"role": map[string]any{"type": "string"},
				},
			},
		},
		"jurisdiction": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"court":   map[string]any{"type": "string"},
				"country": map[string]any{"type": "string"},
			},
		},
		"caseType":  map[string]any{"type": "string"},
		"trialDate": map[string]any{"type": "string"},
		"citations": map[string]any{
			"type":     "array",
			"maxItems": citationsMaxItems,
			"items":    map[string]any{"type": "string"},
		},
		"rationaleHighlights": map[string]any{
			"type":     "array",
			"maxItems": highlightsMaxItems,
			"items":    map[string]any{"type": "string"},
		},
		"confidenceNotes": map[string]any{"type": "string"},
	},
}

// Ensure Validator implements lawfinder.RecordValidator at compile time.
var _ lawfinder.RecordValidator = (*Validator)(nil)

// Validator validates candidate JSON against the CaseRecord schema.
// The schema is compiled once at construction.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the CaseRecord schema and returns a Validator.
func NewValidator() (*Validator, error) {
	b, err := json.Marshal(recordSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("caserecord.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile("caserecord.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks data against the CaseRecord contract. Validation is
// all-or-nothing: any failing field rejects the whole candidate with
// EINVALID. On success the decoded record is returned.
func (v *Validator) Validate(data []byte) (*lawfinder.CaseRecord, error) {
	var candidate any
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, lawfinder.Errorf(lawfinder.EINVALID, "model output is not valid JSON: %v", err)
	}
	if err := v.schema.Validate(candidate); err != nil {
		return nil, lawfinder.Errorf(lawfinder.EINVALID, "model output does not match the case record schema: %v", err)
	}

	var rec lawfinder.CaseRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, lawfinder.Errorf(lawfinder.EINTERNAL, "decode validated record: %v", err)
	}
	return &rec, nil
}
