// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

// Package config handles .vaultscan.yaml configuration files: the ambient
// CLI run configuration, distinct from the JSON rule-store config that
// internal/rulestore reads directly per spec.md's external interface.
package config

// Config represents the contents of a .vaultscan.yaml file. Every field
// mirrors a scanmodel.ScanConfig field one-to-one; pointer-typed booleans
// distinguish "absent from the file" from an explicit false so CLI flags
// and built-in defaults can fill the gap in the documented precedence
// order (flag > file > built-in default).
type Config struct {
	MaxFileSize        int64   `yaml:"max_file_size,omitempty"`
	ScanHistory         *bool   `yaml:"scan_history,omitempty"`
	HistoryCommitLimit int     `yaml:"history_commit_limit,omitempty"`
	EntropyThreshold   float64 `yaml:"entropy_threshold,omitempty"`
	IncludeEntropy      *bool   `yaml:"include_entropy,omitempty"`
	IncludePatterns     *bool   `yaml:"include_patterns,omitempty"`
	RulesConfigPath     string  `yaml:"rules_config_path,omitempty"`
}

// FileName is the expected config file name in a repository root.
const FileName = ".vaultscan.yaml"
