// Package fs provides filesystem document discovery and JSON record
// persistence.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/kbaidoo/lawfinder"
)

// pathSeparatorToken flattens relative input paths into single-level
// output filenames.
const pathSeparatorToken = "__"

// OutputPath converts a relative input path to the output filename:
// separators are replaced with a double-underscore token, the final
// extension is stripped and .json is appended.
// Example: appeals/2004/mensah.html → appeals__2004__mensah.json
func OutputPath(relPath string) string {
	flat := strings.ReplaceAll(filepath.ToSlash(relPath), "/", pathSeparatorToken)
	flat = strings.TrimSuffix(flat, filepath.Ext(flat))
	return flat + ".json"
}

// Ensure Writer implements lawfinder.RecordWriter at compile time.
var _ lawfinder.RecordWriter = (*Writer)(nil)

// Writer persists output payloads as pretty-printed JSON files under a
// base directory. Writing the same payload twice overwrites the previous
// file.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRecord writes one payload to disk, creating parent directories as
// needed. The output location derives from the payload's source path.
func (w *Writer) WriteRecord(ctx context.Context, payload *lawfinder.OutputPayload) error {
	if payload.Metadata.SourcePath == "" {
		return lawfinder.Errorf(lawfinder.EINVALID, "payload source path required")
	}

	fullPath := filepath.Join(w.baseDir, OutputPath(payload.Metadata.SourcePath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, append(data, '\n'), 0644)
}
