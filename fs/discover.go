package fs

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kbaidoo/lawfinder"
)

// documentExtensions are the HTML-like extensions accepted during
// discovery, lowercase.
var documentExtensions = map[string]bool{
	".html": true,
	".htm":  true,
}

// Discover walks root recursively and returns the documents matching the
// extension filter. Paths are sorted lexicographically by relative path so
// that a limit selects a reproducible subset; limit <= 0 means no cap.
func Discover(root string, limit int) ([]lawfinder.Document, error) {
	var docs []lawfinder.Document

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !documentExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		docs = append(docs, lawfinder.Document{
			Path:    path,
			RelPath: filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].RelPath < docs[j].RelPath })

	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}
