package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds services and configuration shared by command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Process  ProcessCmd  `cmd:"" help:"Extract structured case records from HTML court decisions"`
	Backfill BackfillCmd `cmd:"" help:"Fill missing titles and dates in existing records using heuristics only"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	InputDir    string `arg:"" help:"Root directory of HTML court decisions"`
	OutputDir   string `short:"o" default:"out" help:"Directory JSON records are written under"`
	Concurrency int    `short:"c" default:"2" help:"Concurrent document limit"`
	Limit       int    `short:"n" help:"Process only the first N documents (0 = all)"`
	MaxChars    int    `default:"15000" help:"Prompt excerpt cap in characters"`
	Model       string `help:"Gemini model identifier (default: the package default)"`
	DryRun      bool   `help:"Report heuristic titles and dates without calling the model or writing"`
}

// BackfillCmd is the "backfill" subcommand.
type BackfillCmd struct {
	InputDir  string `arg:"" help:"Root directory of HTML court decisions"`
	OutputDir string `arg:"" help:"Directory holding previously written JSON records"`
}
