// Package gemini implements the model capability using Google Gemini with
// schema-constrained JSON output.
package gemini

import (
	"context"

	"github.com/kbaidoo/lawfinder"
	"google.golang.org/genai"
)

// DefaultModel is used when no model identifier is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Extractor implements lawfinder.CaseExtractor at compile time.
var _ lawfinder.CaseExtractor = (*Extractor)(nil)

// Extractor runs case extraction against the Gemini API. Responses are
// validated against the CaseRecord contract before being returned, so a
// successful Extract always yields an accepted record.
type Extractor struct {
	client    *genai.Client
	validator lawfinder.RecordValidator
	model     string
}

// NewExtractor creates a new Extractor. An empty model selects DefaultModel.
func NewExtractor(client *genai.Client, validator lawfinder.RecordValidator, model string) *Extractor {
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{client: client, validator: validator, model: model}
}

// Model returns the model identifier this extractor invokes.
func (e *Extractor) Model() string {
	return e.model
}

// Extract sends the prompt to Gemini and validates the structured response.
func (e *Extractor) Extract(ctx context.Context, prompt lawfinder.Prompt) (*lawfinder.CaseRecord, error) {
	config := BuildConfig(prompt.System)

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt.User}},
		}},
		config,
	)
	if err != nil {
		return nil, lawfinder.Errorf(lawfinder.EUNAVAILABLE, "gemini call failed: %v", err)
	}
	if result == nil {
		return nil, lawfinder.Errorf(lawfinder.EINTERNAL, "gemini returned nil result")
	}

	return e.validator.Validate([]byte(result.Text()))
}

// BuildConfig returns the GenerateContentConfig for extraction calls: low
// temperature, JSON output constrained by the case record response schema.
func BuildConfig(systemInstruction string) *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   RecordSchema(),
	}
}

// RecordSchema describes the CaseRecord shape in Gemini's schema dialect.
// It constrains generation only; authoritative acceptance is the record
// validator's job.
func RecordSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Required: []string{
			"summary", "legalKeywords", "topics", "verdict",
			"winningSide", "prosecutionType", "judges", "jurisdiction",
		},
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeString,
				Description: "Concise summary of the dispute and its outcome.",
			},
			"legalKeywords": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"topics": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"verdict":     {Type: genai.TypeString},
			"winningSide": {Type: genai.TypeString},
			"prosecutionType": {
				Type: genai.TypeString,
				Enum: lawfinder.ProsecutionTypes,
			},
			"judges": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type:     genai.TypeObject,
					Required: []string{"name"},
					Properties: map[string]*genai.Schema{
						"name": {Type: genai.TypeString},
						"role": {Type: genai.TypeString},
					},
				},
			},
			"jurisdiction": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"court":   {Type: genai.TypeString},
					"country": {Type: genai.TypeString},
				},
			},
			"caseType": {Type: genai.TypeString},
			"trialDate": {
				Type:        genai.TypeString,
				Description: "Trial, decision or hearing date exactly as stated in the document.",
			},
			"citations": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"rationaleHighlights": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"confidenceNotes": {Type: genai.TypeString},
		},
	}
}
