package jsonschema_test

import (
	"encoding/json"
	"testing"

	"github.com/kbaidoo/lawfinder"
	"github.com/kbaidoo/lawfinder/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() map[string]any {
	return map[string]any{
		"summary":         "The appellant challenged the award of damages for breach of a land sale agreement and lost on all grounds.",
		"legalKeywords":   []string{"contract", "damages", "land sale"},
		"topics":          []string{"contract law"},
		"verdict":         "appeal dismissed",
		"winningSide":     "respondent",
		"prosecutionType": "civil",
		"judges":          []map[string]any{{"name": "Mensah", "role": "JA"}},
		"jurisdiction":    map[string]any{"court": "Court of Appeal", "country": "Ghana"},
	}
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestValidator_AcceptsValidRecord(t *testing.T) {
	t.Parallel()

	v, err := jsonschema.NewValidator()
	require.NoError(t, err)

	rec, err := v.Validate(marshal(t, validCandidate()))

	require.NoError(t, err)
	assert.Equal(t, "appeal dismissed", rec.Verdict)
	assert.Equal(t, lawfinder.ProsecutionCivil, rec.ProsecutionType)
	assert.Equal(t, []lawfinder.Judge{{Name: "Mensah", Role: "JA"}}, rec.Judges)
}

func TestValidator_RejectsInvalidCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c map[string]any)
	}{
		{
			name:   "prosecution type outside enumeration",
			mutate: func(c map[string]any) { c["prosecutionType"] = "unknown_category" },
		},
		{
			name:   "missing required summary",
			mutate: func(c map[string]any) { delete(c, "summary") },
		},
		{
			name:   "summary below minimum length",
			mutate: func(c map[string]any) { c["summary"] = "too short" },
		},
		{
			name:   "too few legal keywords",
			mutate: func(c map[string]any) { c["legalKeywords"] = []string{"contract"} },
		},
		{
			name:   "empty topics",
			mutate: func(c map[string]any) { c["topics"] = []string{} },
		},
		{
			name:   "empty verdict",
			mutate: func(c map[string]any) { c["verdict"] = "" },
		},
		{
			name:   "missing jurisdiction object",
			mutate: func(c map[string]any) { delete(c, "jurisdiction") },
		},
		{
			name: "judge without a name",
			mutate: func(c map[string]any) {
				c["judges"] = []map[string]any{{"role": "JA"}}
			},
		},
		{
			name:   "unexpected extra field",
			mutate: func(c map[string]any) { c["unexpected"] = true },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := jsonschema.NewValidator()
			require.NoError(t, err)

			candidate := validCandidate()
			tt.mutate(candidate)

			rec, err := v.Validate(marshal(t, candidate))

			require.Error(t, err)
			assert.Nil(t, rec)
			assert.Equal(t, lawfinder.EINVALID, lawfinder.ErrorCode(err))
		})
	}
}

func TestValidator_RejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	v, err := jsonschema.NewValidator()
	require.NoError(t, err)

	rec, err := v.Validate([]byte("{not json"))

	require.Error(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, lawfinder.EINVALID, lawfinder.ErrorCode(err))
}

func TestValidator_AllowsOptionalFields(t *testing.T) {
	t.Parallel()

	v, err := jsonschema.NewValidator()
	require.NoError(t, err)

	candidate := validCandidate()
	candidate["caseType"] = "civil appeal"
	candidate["trialDate"] = "26 March 2004"
	candidate["citations"] = []string{"[1960] GLR 1"}
	candidate["rationaleHighlights"] = []string{"consideration was adequate"}
	candidate["confidenceNotes"] = "date read from the header"

	rec, err := v.Validate(marshal(t, candidate))

	require.NoError(t, err)
	assert.Equal(t, "civil appeal", rec.CaseType)
	assert.Equal(t, "26 March 2004", rec.TrialDate)
}
