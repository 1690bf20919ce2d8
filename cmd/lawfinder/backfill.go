package main

import (
	"fmt"

	"github.com/kbaidoo/lawfinder/pipeline"
)

// Run executes the backfill command.
func (c *BackfillCmd) Run(deps *Dependencies) error {
	result, err := pipeline.Backfill(deps.Ctx, pipeline.BackfillConfig{
		InputDir:  c.InputDir,
		OutputDir: c.OutputDir,
	}, deps.Logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Backfill complete: %d records, %d updated, %d skipped, %d failed\n",
		result.Total, result.Updated, result.Skipped, result.Failed)
	return nil
}
