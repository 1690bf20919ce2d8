package main

import (
	"fmt"
	"os"

	"github.com/kbaidoo/lawfinder"
	"github.com/kbaidoo/lawfinder/fs"
	"github.com/kbaidoo/lawfinder/gemini"
	"github.com/kbaidoo/lawfinder/htmltotext"
	"github.com/kbaidoo/lawfinder/jsonschema"
	"github.com/kbaidoo/lawfinder/pipeline"
	lfslog "github.com/kbaidoo/lawfinder/slog"
	"google.golang.org/genai"
)

// Run executes the process command.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	model := c.Model
	if model == "" {
		model = gemini.DefaultModel
	}

	config := pipeline.Config{
		InputDir:    c.InputDir,
		OutputDir:   c.OutputDir,
		Model:       model,
		Concurrency: c.Concurrency,
		Limit:       c.Limit,
		MaxChars:    c.MaxChars,
		DryRun:      c.DryRun,
	}

	processor := &pipeline.Processor{
		Converter: htmltotext.NewConverter(),
		Logger:    deps.Logger,
		Config:    config,
	}

	if !c.DryRun {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(deps.Stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return lawfinder.Errorf(lawfinder.EINVALID, "GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(deps.Ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		validator, err := jsonschema.NewValidator()
		if err != nil {
			return fmt.Errorf("failed to compile record schema: %w", err)
		}

		processor.Extractor = lfslog.NewExtractor(
			gemini.NewExtractor(client, validator, model),
			deps.Logger,
		)
		processor.Writer = fs.NewWriter(c.OutputDir)
	}

	result, err := processor.Run(deps.Ctx, c.progress(deps))
	if err != nil {
		return err
	}

	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "Dry run complete: %d documents inspected\n", result.Total)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Processed %d documents: %d saved, %d failed\n", result.Total, result.Saved, result.Failed)
	return nil
}

// progress returns the progress callback used to report per-document
// outcomes on stdout/stderr.
func (c *ProcessCmd) progress(deps *Dependencies) pipeline.ProgressFunc {
	return func(e pipeline.ProgressEvent) {
		switch e.Type {
		case pipeline.ProgressSkipped:
			date := e.Date
			if date == "" {
				date = "(no date)"
			}
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n    title: %s\n    date:  %s\n", e.Completed, e.Total, e.RelPath, e.Title, date)
		case pipeline.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] ok   %s\n", e.Completed, e.Total, e.RelPath)
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] fail %s: %s\n", e.Completed, e.Total, e.RelPath, lawfinder.ErrorMessage(e.Error))
		}
	}
}
