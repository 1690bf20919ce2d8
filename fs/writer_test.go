package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kbaidoo/lawfinder"
	"github.com/kbaidoo/lawfinder/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		relPath string
		want    string
	}{
		{
			name:    "nested path flattened",
			relPath: "appeals/2004/mensah.html",
			want:    "appeals__2004__mensah.json",
		},
		{
			name:    "top level file",
			relPath: "decision.htm",
			want:    "decision.json",
		},
		{
			name:    "no extension",
			relPath: "decisions/raw",
			want:    "decisions__raw.json",
		},
		{
			name:    "spaces preserved",
			relPath: "LAW FINDER/COURT OF APPEAL/case one.html",
			want:    "LAW FINDER__COURT OF APPEAL__case one.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.OutputPath(tt.relPath))
		})
	}
}

func testPayload(relPath string) *lawfinder.OutputPayload {
	return &lawfinder.OutputPayload{
		CaseTitle:           "MENSAH v. DARKO",
		Summary:             "The appeal was dismissed with costs to the respondent after a dispute over land title registration.",
		LegalKeywords:       []string{"land", "title", "registration"},
		Topics:              []string{"property law"},
		Verdict:             "appeal dismissed",
		WinningSide:         "respondent",
		ProsecutionType:     lawfinder.ProsecutionCivil,
		Judges:              []lawfinder.Judge{{Name: "Mensah", Role: "JA"}},
		Jurisdiction:        lawfinder.Jurisdiction{Court: "Court of Appeal"},
		Citations:           []string{},
		RationaleHighlights: []string{},
		Metadata: lawfinder.Metadata{
			SourcePath:      relPath,
			Model:           "gemini-2.5-flash",
			PlainTextLength: 1234,
		},
	}
}

func TestWriter_WriteRecord(t *testing.T) {
	t.Parallel()

	t.Run("writes pretty printed JSON at the derived path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		err := w.WriteRecord(context.Background(), testPayload("appeals/2004/mensah.html"))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "appeals__2004__mensah.json"))
		require.NoError(t, err)

		var got lawfinder.OutputPayload
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "MENSAH v. DARKO", got.CaseTitle)
		assert.Contains(t, string(data), "\n  \"caseTitle\"")
	})

	t.Run("null trial date serialized explicitly", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		require.NoError(t, w.WriteRecord(context.Background(), testPayload("a.html")))

		data, err := os.ReadFile(filepath.Join(dir, "a.json"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"trialDate": null`)
	})

	t.Run("overwrites a previous record at the same path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		first := testPayload("a.html")
		require.NoError(t, w.WriteRecord(context.Background(), first))

		second := testPayload("a.html")
		second.CaseTitle = "UPDATED v. TITLE"
		require.NoError(t, w.WriteRecord(context.Background(), second))

		data, err := os.ReadFile(filepath.Join(dir, "a.json"))
		require.NoError(t, err)

		var got lawfinder.OutputPayload
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "UPDATED v. TITLE", got.CaseTitle)
	})

	t.Run("missing source path rejected", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteRecord(context.Background(), &lawfinder.OutputPayload{})

		require.Error(t, err)
		assert.Equal(t, lawfinder.EINVALID, lawfinder.ErrorCode(err))
	})
}
