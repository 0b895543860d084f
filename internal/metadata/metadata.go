// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

// Package metadata extracts structured document metadata (office documents,
// PDFs, images with EXIF) and runs the text-artifact companion pass over
// the same files. It is applied to working-tree files only; history scans
// never reach this package.
package metadata

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wardenclyffe/vaultscan/internal/content"
	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

// extractor produces metadata findings for one office/PDF/image format.
// Errors are never returned to the caller: every extractor is best-effort
// and swallows its own failures, per the format's documented contract.
type extractor func(path string) []scanmodel.Finding

var extractorsByExt = map[string]extractor{
	".docx": extractDocx,
	".xlsx": extractXlsx,
	".pptx": extractPptx,
	".pdf":  extractPDF,
	".jpg":  extractEXIF,
	".jpeg": extractEXIF,
	".png":  extractEXIF,
}

// Extract dispatches path to its format-specific metadata extractor (if
// any), then opportunistically re-reads the file as lossy text and runs
// the text-artifact companion pass. All findings are tagged source =
// "workdir" and path = relPath. maxSize bounds the companion text pass the
// same way it bounds the working-tree reader.
func Extract(path, relPath string, maxSize int64) []scanmodel.Finding {
	ext := strings.ToLower(filepath.Ext(path))
	fn, ok := extractorsByExt[ext]
	if !ok {
		return nil
	}

	var findings []scanmodel.Finding
	findings = append(findings, fn(path)...)
	findings = append(findings, scanTextCompanion(path, maxSize)...)

	for i := range findings {
		findings[i].Source = "workdir"
		findings[i].Path = relPath
	}
	return findings
}

// IsMetaExtension reports whether ext (lowercase, with leading dot) is one
// of the formats handled by Extract.
func IsMetaExtension(ext string) bool {
	_, ok := extractorsByExt[strings.ToLower(ext)]
	return ok
}

// scanTextCompanion opportunistically re-reads path as lossy UTF-8 text and
// runs the text-artifact heuristics. Failures (oversize, unreadable,
// binary) are swallowed.
func scanTextCompanion(path string, maxSize int64) []scanmodel.Finding {
	data, err := os.ReadFile(path) //nolint:gosec // caller-controlled path
	if err != nil {
		return nil
	}
	text, ok := content.AsText(data, maxSize)
	if !ok {
		return nil
	}
	return textArtifacts(text)
}

// metaFinding builds a low-start/end metadata Finding with the given kind,
// excerpt, severity, and hint.
func metaFinding(kind, excerpt, severity, hint string) scanmodel.Finding {
	h := hint
	return scanmodel.Finding{
		Kind:     kind,
		Excerpt:  excerpt,
		Category: "metadata",
		Severity: severity,
		Hint:     &h,
	}
}
