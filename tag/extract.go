package tag

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docdrift/docdrift/debug"
)

// Extract walks root and parses every file whose extension (without
// the leading dot) is in exts. Records carry slash-separated paths
// relative to root, so snapshots of the same tree materialized at
// different roots compare cleanly. Files are visited in sorted
// relative-path order so two runs over identical trees produce
// identical records.
//
// Any malformed tag fails the whole run.
func Extract(root string, exts []string) ([]Tag, error) {
	if len(exts) == 0 {
		return nil, fmt.Errorf("%w: nothing to scan under %q", ErrNoExtensions, root)
	}
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[strings.TrimPrefix(e, ".")] = true
	}
	var files []string
	err := filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if de.Name() == ".git" && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !extSet[strings.TrimPrefix(filepath.Ext(path), ".")] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", root, err)
	}
	sort.Strings(files)

	var res []Tag
	for _, file := range files {
		d, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(file)))
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", file, err)
		}
		tags, err := ScanText(file, string(d))
		if err != nil {
			return nil, err
		}
		if debug.Scan() {
			debug.Logf("scanned %s: %d tags\n", file, len(tags))
		}
		res = append(res, tags...)
	}
	return res, nil
}
