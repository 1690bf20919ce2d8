package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/kbaidoo/lawfinder"
	"github.com/kbaidoo/lawfinder/mock"
	lfslog "github.com/kbaidoo/lawfinder/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_LogsFailures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := &mock.CaseExtractor{
		ExtractFn: func(ctx context.Context, prompt lawfinder.Prompt) (*lawfinder.CaseRecord, error) {
			return nil, lawfinder.Errorf(lawfinder.EINVALID, "schema mismatch")
		},
	}

	e := lfslog.NewExtractor(next, logger)

	_, err := e.Extract(context.Background(), lawfinder.Prompt{User: "u"})

	require.Error(t, err)
	assert.Contains(t, buf.String(), "model extraction failed")
	assert.Contains(t, buf.String(), lawfinder.EINVALID)
}

func TestExtractor_PassesThroughRecord(t *testing.T) {
	t.Parallel()

	want := &lawfinder.CaseRecord{Verdict: "appeal dismissed"}
	next := &mock.CaseExtractor{
		ExtractFn: func(ctx context.Context, prompt lawfinder.Prompt) (*lawfinder.CaseRecord, error) {
			return want, nil
		},
	}

	e := lfslog.NewExtractor(next, slog.New(slog.DiscardHandler))

	got, err := e.Extract(context.Background(), lawfinder.Prompt{User: "u"})

	require.NoError(t, err)
	assert.Same(t, want, got)
}
