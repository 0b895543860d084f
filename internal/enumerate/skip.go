// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

// Package enumerate provides the two source enumerators: one over the
// working tree, one over historical version-control object revisions. Both
// apply the same skip rules and tag items with a source and logical path.
package enumerate

import (
	"path/filepath"
	"strings"
)

var skipDirs = map[string]bool{
	".git":         true,
	"__pycache__":  true,
	"node_modules": true,
	".venv":        true,
	"venv":         true,
}

var binarySuffixes = map[string]bool{
	".pyc": true, ".so": true, ".dll": true, ".exe": true,
	".zip": true, ".tar": true, ".gz": true, ".7z": true,
	".mp3": true, ".mp4": true, ".avi": true, ".mov": true,
	".ogg": true, ".ico": true, ".woff": true, ".woff2": true,
}

// metaOK extensions are exempted from the binary-suffix exclusion and
// routed to the metadata extractor instead of the content matchers.
var metaOK = map[string]bool{
	".docx": true, ".xlsx": true, ".pptx": true, ".pdf": true,
	".jpg": true, ".jpeg": true, ".png": true,
}

// shouldSkipDir reports whether a directory named component must never be
// descended into.
func shouldSkipDir(component string) bool {
	return skipDirs[component]
}

// shouldSkipFile reports whether relPath's suffix places it in
// binary_suffixes \ meta_ok, i.e. it must be skipped entirely.
func shouldSkipFile(relPath string) bool {
	ext := strings.ToLower(filepath.Ext(relPath))
	return binarySuffixes[ext] && !metaOK[ext]
}

// isMetaOK reports whether relPath's suffix routes it to the metadata
// extractor rather than the content matchers.
func isMetaOK(relPath string) bool {
	return metaOK[strings.ToLower(filepath.Ext(relPath))]
}
