// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package enumerate

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, relPath string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(relPath))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o700))
	require.NoError(t, os.WriteFile(full, []byte("content"), 0o600))
}

func relPaths(items []WorkdirItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.RelPath
	}
	sort.Strings(out)
	return out
}

func TestWorkdir_SkipsVCSAndDependencyDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go")
	writeFile(t, root, ".git/config")
	writeFile(t, root, "node_modules/pkg/index.js")
	writeFile(t, root, "__pycache__/mod.pyc")
	writeFile(t, root, ".venv/lib/site.py")
	writeFile(t, root, "venv/lib/site.py")

	items, err := Workdir(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go"}, relPaths(items))
}

func TestWorkdir_SkipsBinarySuffixes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.exe")
	writeFile(t, root, "archive.zip")
	writeFile(t, root, "src/main.go")

	items, err := Workdir(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/main.go"}, relPaths(items))
}

func TestWorkdir_MetaOKFilesIncludedAndFlagged(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "report.pdf")
	writeFile(t, root, "photo.jpg")
	writeFile(t, root, "notes.txt")

	items, err := Workdir(root)
	require.NoError(t, err)
	require.Len(t, items, 3)

	byPath := map[string]WorkdirItem{}
	for _, it := range items {
		byPath[it.RelPath] = it
	}

	assert.True(t, byPath["report.pdf"].MetaOK)
	assert.True(t, byPath["photo.jpg"].MetaOK)
	assert.False(t, byPath["notes.txt"].MetaOK)
}

func TestWorkdir_AbsPathResolvesUnderRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b/c.go")

	items, err := Workdir(root)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, filepath.Join(root, "a", "b", "c.go"), items[0].AbsPath)
	assert.Equal(t, "a/b/c.go", items[0].RelPath)
}

func TestWorkdir_EmptyDirYieldsNoItems(t *testing.T) {
	root := t.TempDir()

	items, err := Workdir(root)
	require.NoError(t, err)
	assert.Empty(t, items)
}
