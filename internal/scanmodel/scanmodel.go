// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

// Package scanmodel defines the data types shared by every stage of the
// scanning pipeline: the rule store's compiled Rule, the ScanConfig an
// invocation is parameterized by, and the Finding/ScanResult types the
// pipeline produces.
package scanmodel

import "regexp"

// Rule is a named, compiled regular expression from the active rule store.
// Rule names are stable identifiers referenced by the severity and category
// tables in package enrich.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// ScanConfig holds the inputs controlling a single scan.
type ScanConfig struct {
	// RepoPath is the absolute path to a materialized repository on disk.
	// It must exist, or ScanRepository fails.
	RepoPath string

	// MaxFileSize is the per-blob byte ceiling. Files/blobs strictly larger
	// than this are skipped. Zero means the default of 1,000,000 applies.
	MaxFileSize int64

	// ScanHistory enables traversal of version-control object revisions in
	// addition to the working tree.
	ScanHistory bool

	// HistoryCommitLimit optionally caps the number of revisions examined.
	// Zero means unlimited.
	HistoryCommitLimit int

	// EntropyThreshold is the minimum Shannon entropy (bits/byte) for a
	// high-entropy token to be reported. Zero means the default of 4.2
	// applies.
	EntropyThreshold float64

	// IncludeEntropy and IncludePatterns toggle the two content matchers.
	IncludeEntropy  bool
	IncludePatterns bool

	// RulesConfigPath optionally overrides the default rule set lookup.
	RulesConfigPath string
}

// DefaultMaxFileSize is applied when ScanConfig.MaxFileSize is zero.
const DefaultMaxFileSize = 1_000_000

// DefaultEntropyThreshold is applied when ScanConfig.EntropyThreshold is zero.
const DefaultEntropyThreshold = 4.2

// Normalize returns a copy of cfg with zero-valued optional fields replaced
// by their documented defaults.
func (cfg ScanConfig) Normalize() ScanConfig {
	if cfg.MaxFileSize == 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.EntropyThreshold == 0 {
		cfg.EntropyThreshold = DefaultEntropyThreshold
	}
	return cfg
}

// Finding is one raw or enriched detection. A Finding is created by a
// matcher with a raw Kind and default Category/Severity, flows through
// deduplication keyed on (Source, Path, Kind, Excerpt), and is enriched in
// place afterward. Findings are immutable after enrichment.
type Finding struct {
	// Source is either the literal tag "workdir" or a revision identifier
	// (hex commit hash).
	Source string `json:"source"`

	// Path is the repository-relative logical path (forward slashes).
	Path string `json:"path"`

	// Kind is the rule name, e.g. "aws_secret_access_key", "high_entropy",
	// "exif_gps", "docx_author".
	Kind string `json:"kind"`

	// Excerpt is a bounded context window around the match: at most 200
	// characters for regex/entropy findings, or a short "key: value"
	// string for metadata findings.
	Excerpt string `json:"excerpt"`

	// Start and End are byte offsets within the blob for content matches;
	// both are 0 for metadata findings.
	Start int `json:"start"`
	End   int `json:"end"`

	// Entropy is populated only for entropy findings.
	Entropy *float64 `json:"entropy"`

	// Category is one of {secret, infra, pii, metadata, config}.
	Category string `json:"category"`

	// Severity is one of {info, low, medium, high, critical}.
	Severity string `json:"severity"`

	// Hint is a human-readable remediation string, or nil if absent.
	Hint *string `json:"hint"`
}

// ScanResult is the outcome of a scan: the repository path scanned and the
// findings produced. Findings are unordered; callers may sort.
type ScanResult struct {
	RepoPath string    `json:"repo_path"`
	Findings []Finding `json:"findings"`
}
