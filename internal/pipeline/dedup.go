// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

// Package pipeline assembles raw findings from the matchers and metadata
// extractors into the final, deduplicated, and classified ScanResult.
package pipeline

import "github.com/wardenclyffe/vaultscan/internal/scanmodel"

type dedupKey struct {
	source, path, kind, excerpt string
}

// Dedup collapses findings sharing a (source, path, kind, excerpt) key,
// keeping the first occurrence. Scan order is not guaranteed, so "first"
// only fixes which duplicate's other fields (entropy, start/end) survive.
func Dedup(findings []scanmodel.Finding) []scanmodel.Finding {
	seen := make(map[dedupKey]bool, len(findings))
	out := make([]scanmodel.Finding, 0, len(findings))
	for _, f := range findings {
		key := dedupKey{f.Source, f.Path, f.Kind, f.Excerpt}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}
	return out
}
