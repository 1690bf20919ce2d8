package mock

import (
	"context"

	"github.com/kbaidoo/lawfinder"
)

var _ lawfinder.CaseExtractor = (*CaseExtractor)(nil)

// CaseExtractor is a mock implementation of lawfinder.CaseExtractor.
type CaseExtractor struct {
	ExtractFn func(ctx context.Context, prompt lawfinder.Prompt) (*lawfinder.CaseRecord, error)
}

func (e *CaseExtractor) Extract(ctx context.Context, prompt lawfinder.Prompt) (*lawfinder.CaseRecord, error) {
	return e.ExtractFn(ctx, prompt)
}
