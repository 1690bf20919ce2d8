package pipeline

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kbaidoo/lawfinder"
	"github.com/kbaidoo/lawfinder/goquery"
)

// backfillScanLines is how many lines of lead text the title heuristics
// get to work with during backfill.
const backfillScanLines = 50

// BackfillConfig configures a backfill pass over previously written
// records.
type BackfillConfig struct {
	// InputDir is the root the source HTML lives under; record source
	// paths are resolved against it.
	InputDir string

	// OutputDir is the root holding the JSON records to revisit.
	OutputDir string
}

// BackfillResult holds the outcome of a backfill pass.
type BackfillResult struct {
	Total   int
	Updated int
	Skipped int
	Failed  int
}

// Backfill revisits existing records and fills a missing or placeholder
// case title and a null trial date using the heuristics alone; no model
// call is made. Records that already carry both values are skipped. A
// record that cannot be repaired is left untouched and counted as failed.
func Backfill(ctx context.Context, cfg BackfillConfig, logger *slog.Logger) (*BackfillResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	result := &BackfillResult{}

	err := filepath.WalkDir(cfg.OutputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		result.Total++
		updated, err := backfillRecord(cfg, path)
		switch {
		case err != nil:
			result.Failed++
			logger.Error("backfill failed", "path", path, "error", err)
		case updated:
			result.Updated++
		default:
			result.Skipped++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("backfill finished",
		"total", result.Total,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

// backfillRecord repairs a single record file in place. It reports whether
// the file was rewritten.
func backfillRecord(cfg BackfillConfig, path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	var payload lawfinder.OutputPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return false, lawfinder.Errorf(lawfinder.EINVALID, "record is not a valid payload: %v", err)
	}

	needTitle := lawfinder.PlaceholderTitle(payload.CaseTitle)
	needDate := payload.TrialDate == nil
	if !needTitle && !needDate {
		return false, nil
	}
	if payload.Metadata.SourcePath == "" {
		return false, lawfinder.Errorf(lawfinder.EINVALID, "record has no source path")
	}

	htmlPath := filepath.Join(cfg.InputDir, filepath.FromSlash(payload.Metadata.SourcePath))
	raw, err := os.ReadFile(htmlPath)
	if err != nil {
		return false, err
	}
	rawHTML := string(raw)

	changed := false

	if needTitle {
		lead, err := goquery.LeadText(rawHTML, backfillScanLines)
		if err != nil {
			lead = ""
		}
		title, ok := lawfinder.ExtractTitle(rawHTML, lead)
		if !ok {
			title = lawfinder.TitleFromFilename(payload.Metadata.SourcePath)
		}
		if !lawfinder.PlaceholderTitle(title) && title != payload.CaseTitle {
			payload.CaseTitle = title
			changed = true
		}
	}

	if needDate {
		if date, ok := lawfinder.ExtractDate(rawHTML); ok {
			payload.TrialDate = &date
			changed = true
		}
	}

	if !changed {
		return false, nil
	}

	out, err := json.MarshalIndent(&payload, "", "  ")
	if err != nil {
		return false, err
	}
	return true, os.WriteFile(path, append(out, '\n'), 0644)
}
