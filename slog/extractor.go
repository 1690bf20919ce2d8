// Package slog provides logging decorators for lawfinder services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kbaidoo/lawfinder"
)

// Ensure Extractor implements lawfinder.CaseExtractor.
var _ lawfinder.CaseExtractor = (*Extractor)(nil)

// Extractor wraps a CaseExtractor with duration and outcome logging for
// each model invocation.
type Extractor struct {
	next   lawfinder.CaseExtractor
	logger *slog.Logger
}

// NewExtractor creates a new logging Extractor.
func NewExtractor(next lawfinder.CaseExtractor, logger *slog.Logger) *Extractor {
	return &Extractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the call.
func (e *Extractor) Extract(ctx context.Context, prompt lawfinder.Prompt) (*lawfinder.CaseRecord, error) {
	begin := time.Now()
	rec, err := e.next.Extract(ctx, prompt)
	if err != nil {
		e.logger.Error("model extraction failed",
			"code", lawfinder.ErrorCode(err),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Debug("model extraction completed",
		"duration", time.Since(begin),
		"prompt_chars", len(prompt.User),
	)
	return rec, nil
}
