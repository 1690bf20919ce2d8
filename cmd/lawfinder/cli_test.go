package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) *CLI {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func TestProcessCmd_Defaults(t *testing.T) {
	t.Parallel()

	cli := parseCLI(t, "process", "docs")

	assert.Equal(t, "docs", cli.Process.InputDir)
	assert.Equal(t, "out", cli.Process.OutputDir)
	assert.Equal(t, 2, cli.Process.Concurrency)
	assert.Equal(t, 15000, cli.Process.MaxChars)
	assert.Zero(t, cli.Process.Limit)
	assert.False(t, cli.Process.DryRun)
	assert.Empty(t, cli.Process.Model)
}

func TestProcessCmd_Flags(t *testing.T) {
	t.Parallel()

	cli := parseCLI(t, "process", "docs",
		"-o", "records", "-c", "4", "-n", "10",
		"--max-chars", "5000", "--model", "gemini-2.5-pro", "--dry-run")

	assert.Equal(t, "records", cli.Process.OutputDir)
	assert.Equal(t, 4, cli.Process.Concurrency)
	assert.Equal(t, 10, cli.Process.Limit)
	assert.Equal(t, 5000, cli.Process.MaxChars)
	assert.Equal(t, "gemini-2.5-pro", cli.Process.Model)
	assert.True(t, cli.Process.DryRun)
}

func TestBackfillCmd_Args(t *testing.T) {
	t.Parallel()

	cli := parseCLI(t, "backfill", "docs", "records")

	assert.Equal(t, "docs", cli.Backfill.InputDir)
	assert.Equal(t, "records", cli.Backfill.OutputDir)
}
