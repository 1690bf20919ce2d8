// Package pipeline orchestrates batch extraction: it discovers input
// documents, drives each one through conversion, heuristics, the model
// capability and persistence under a bounded concurrency ceiling, and
// reports per-document outcomes without letting one failure abort the
// batch.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/kbaidoo/lawfinder"
	"github.com/kbaidoo/lawfinder/fs"
	"golang.org/x/sync/errgroup"
)

// Default configuration values.
const (
	DefaultConcurrency = 2
)

// Config is the immutable run configuration. It is constructed once at
// startup and passed by value; pipeline stages never consult ambient
// state.
type Config struct {
	// InputDir is the root to discover HTML documents under.
	InputDir string

	// OutputDir is the root the JSON records are written under.
	OutputDir string

	// Model is the model identifier stamped into record metadata.
	Model string

	// Concurrency is the ceiling on simultaneously in-flight documents.
	// Values below 1 are raised to 1; zero selects DefaultConcurrency.
	Concurrency int

	// Limit caps processing to the first N discovered documents
	// (lexicographic order). Zero or negative means no cap.
	Limit int

	// MaxChars caps the prompt excerpt, in characters. Zero selects
	// lawfinder.DefaultMaxChars.
	MaxChars int

	// DryRun stops each document after heuristic extraction: no model
	// call, no write.
	DryRun bool
}

// concurrency resolves the effective ceiling.
func (c Config) concurrency() int {
	switch {
	case c.Concurrency == 0:
		return DefaultConcurrency
	case c.Concurrency < 1:
		return 1
	}
	return c.Concurrency
}

// Processor drives documents through the extraction pipeline. All
// collaborators are required except Logger, which defaults to
// slog.Default(). In dry-run mode Extractor and Writer may be nil.
type Processor struct {
	Converter lawfinder.Converter
	Extractor lawfinder.CaseExtractor
	Writer    lawfinder.RecordWriter
	Logger    *slog.Logger
	Config    Config
}

// Result holds the outcome of a batch run.
type Result struct {
	Total   int
	Saved   int
	Skipped int
	Failed  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	RelPath   string
	Title     string
	Date      string
	Error     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// docResult holds the outcome of processing a single document.
type docResult struct {
	relPath string
	title   string
	date    string
	skipped bool
	err     error
}

// Run processes every matching document under the input root. One
// document's failure is isolated: it is logged and counted but does not
// cancel sibling units. The returned error is non-nil when any document
// failed, after all documents have been attempted.
func (p *Processor) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run_id", uuid.NewString())

	docs, err := fs.Discover(p.Config.InputDir, p.Config.Limit)
	if err != nil {
		return nil, err
	}
	total := len(docs)
	if total == 0 {
		logger.Warn("no documents found", "input_dir", p.Config.InputDir)
		return &Result{}, nil
	}

	logger.Info("starting batch",
		"documents", total,
		"concurrency", p.Config.concurrency(),
		"dry_run", p.Config.DryRun,
	)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan docResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Config.concurrency())

	go func() {
		for _, doc := range docs {
			doc := doc
			g.Go(func() error {
				resultCh <- p.processDocument(gctx, doc)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{Total: total}
	var completed atomic.Int64

	for r := range resultCh {
		completed.Add(1)

		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			RelPath:   r.relPath,
			Title:     r.title,
			Date:      r.date,
		}

		switch {
		case r.err != nil:
			result.Failed++
			logger.Error("document failed",
				"path", r.relPath,
				"code", lawfinder.ErrorCode(r.err),
				"error", r.err,
			)
			event.Type = ProgressFailed
			event.Error = r.err
		case r.skipped:
			result.Skipped++
			event.Type = ProgressSkipped
		default:
			result.Saved++
			event.Type = ProgressCompleted
		}

		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	logger.Info("batch finished",
		"saved", result.Saved,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)

	if result.Failed > 0 {
		return result, lawfinder.Errorf(lawfinder.EINTERNAL, "%d of %d documents failed", result.Failed, total)
	}
	return result, nil
}

// processDocument runs one document through the full pipeline. Steps are
// strictly sequential within a document: read, sanitize and extract, build
// prompt, invoke model, assemble, write.
func (p *Processor) processDocument(ctx context.Context, doc lawfinder.Document) docResult {
	result := docResult{relPath: doc.RelPath}

	raw, err := os.ReadFile(doc.Path)
	if err != nil {
		result.err = err
		return result
	}

	plainText, err := p.Converter.Convert(string(raw))
	if err != nil {
		result.err = err
		return result
	}

	ec := lawfinder.NewExtractionContext(doc, string(raw), plainText)
	result.title = ec.Title
	result.date = ec.Date

	if p.Config.DryRun {
		result.skipped = true
		return result
	}

	prompt := lawfinder.BuildPrompt(doc.RelPath, ec, p.Config.MaxChars)

	rec, err := p.Extractor.Extract(ctx, prompt)
	if err != nil {
		result.err = err
		return result
	}

	payload := lawfinder.BuildOutputPayload(
		rec, ec.Title, ec.Date,
		doc.RelPath, p.Config.Model,
		lawfinder.TextLength(plainText),
	)

	if err := p.Writer.WriteRecord(ctx, payload); err != nil {
		result.err = err
		return result
	}
	return result
}
