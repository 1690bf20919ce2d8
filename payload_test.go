package lawfinder_test

import (
	"testing"
	"time"

	"github.com/kbaidoo/lawfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *lawfinder.CaseRecord {
	return &lawfinder.CaseRecord{
		Summary:         "The appellant challenged the trial court's award of damages for breach of a land sale agreement and lost on all grounds.",
		LegalKeywords:   []string{"contract", "damages", "land sale"},
		Topics:          []string{"contract law"},
		Verdict:         "appeal dismissed",
		WinningSide:     "respondent",
		ProsecutionType: lawfinder.ProsecutionCivil,
		Judges:          []lawfinder.Judge{{Name: "Mensah", Role: "JA"}},
		Jurisdiction:    lawfinder.Jurisdiction{Court: "Court of Appeal", Country: "Ghana"},
	}
}

func TestBuildOutputPayload(t *testing.T) {
	t.Parallel()

	t.Run("model trial date takes precedence over heuristic", func(t *testing.T) {
		t.Parallel()

		rec := validRecord()
		rec.TrialDate = "26 March 2004"

		p := lawfinder.BuildOutputPayload(rec, "A v. B", "[30/1/2003]", "a.html", "gemini-2.5-flash", 100)

		require.NotNil(t, p.TrialDate)
		assert.Equal(t, "26 March 2004", *p.TrialDate)
	})

	t.Run("heuristic date fills in when model omits it", func(t *testing.T) {
		t.Parallel()

		p := lawfinder.BuildOutputPayload(validRecord(), "A v. B", "[30/1/2003]", "a.html", "gemini-2.5-flash", 100)

		require.NotNil(t, p.TrialDate)
		assert.Equal(t, "[30/1/2003]", *p.TrialDate)
	})

	t.Run("trial date null when neither present", func(t *testing.T) {
		t.Parallel()

		p := lawfinder.BuildOutputPayload(validRecord(), "A v. B", "", "a.html", "gemini-2.5-flash", 100)

		assert.Nil(t, p.TrialDate)
	})

	t.Run("optional arrays default to empty and notes to null", func(t *testing.T) {
		t.Parallel()

		p := lawfinder.BuildOutputPayload(validRecord(), "A v. B", "", "a.html", "gemini-2.5-flash", 100)

		assert.NotNil(t, p.Citations)
		assert.Empty(t, p.Citations)
		assert.NotNil(t, p.RationaleHighlights)
		assert.Empty(t, p.RationaleHighlights)
		assert.Nil(t, p.ConfidenceNotes)
	})

	t.Run("metadata stamped at assembly time", func(t *testing.T) {
		t.Parallel()

		before := time.Now().UTC()
		p := lawfinder.BuildOutputPayload(validRecord(), "A v. B", "", "appeals/a.html", "gemini-2.5-flash", 20000)
		after := time.Now().UTC()

		assert.Equal(t, "appeals/a.html", p.Metadata.SourcePath)
		assert.Equal(t, "gemini-2.5-flash", p.Metadata.Model)
		assert.Equal(t, 20000, p.Metadata.PlainTextLength)
		assert.False(t, p.Metadata.ProcessedAt.Before(before))
		assert.False(t, p.Metadata.ProcessedAt.After(after))
	})

	t.Run("record fields pass through unchanged", func(t *testing.T) {
		t.Parallel()

		rec := validRecord()
		rec.Citations = []string{"[1960] GLR 1"}
		rec.ConfidenceNotes = "date inferred from header"

		p := lawfinder.BuildOutputPayload(rec, "A v. B", "", "a.html", "m", 1)

		assert.Equal(t, rec.Summary, p.Summary)
		assert.Equal(t, rec.LegalKeywords, p.LegalKeywords)
		assert.Equal(t, rec.Topics, p.Topics)
		assert.Equal(t, rec.Verdict, p.Verdict)
		assert.Equal(t, rec.WinningSide, p.WinningSide)
		assert.Equal(t, rec.ProsecutionType, p.ProsecutionType)
		assert.Equal(t, rec.Judges, p.Judges)
		assert.Equal(t, rec.Jurisdiction, p.Jurisdiction)
		assert.Equal(t, []string{"[1960] GLR 1"}, p.Citations)
		require.NotNil(t, p.ConfidenceNotes)
		assert.Equal(t, "date inferred from header", *p.ConfidenceNotes)
	})
}
