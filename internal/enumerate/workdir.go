// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package enumerate

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// WorkdirItem is one file the working-tree enumerator yields: its
// repository-relative logical path (forward slashes), its absolute
// filesystem path, and whether its extension routes it to the metadata
// extractor instead of the content matchers.
type WorkdirItem struct {
	RelPath string
	AbsPath string
	MetaOK  bool
}

// Workdir recursively walks repoPath, yielding files only, skipping the
// standard VCS/dependency/venv directories and binary-suffixed files (other
// than the meta_ok formats).
func Workdir(repoPath string) ([]WorkdirItem, error) {
	var items []WorkdirItem

	err := filepath.WalkDir(repoPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != repoPath && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(repoPath, path)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		for _, component := range strings.Split(relPath, "/") {
			if shouldSkipDir(component) {
				return nil
			}
		}
		if shouldSkipFile(relPath) {
			return nil
		}

		items = append(items, WorkdirItem{
			RelPath: relPath,
			AbsPath: path,
			MetaOK:  isMetaOK(relPath),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
