// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wardenclyffe/vaultscan/internal/config"
	"github.com/wardenclyffe/vaultscan/internal/engine"
	"github.com/wardenclyffe/vaultscan/internal/redact"
	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

// Scan-specific flag values.
var (
	scanMaxFileSize        int64
	scanHistory            bool
	scanHistoryCommitLimit int
	scanEntropyThreshold   float64
	scanIncludeEntropy     bool
	scanIncludePatterns    bool
	scanRulesPath          string
	scanOutput             string
	scanFormat             string
	scanFailOn             string
	scanPathPrefix         string
	scanCommit             string
)

// scanCmd is the subcommand that runs a full scan of a repository.
var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a repository for secrets, credentials, and sensitive metadata",
	Long: `Scan walks a local working tree (and, with --scan-history, its version-
control object revisions), matches content against the active rule set,
extracts office/PDF/image metadata, and prints a deduplicated,
classified, severity-ranked ScanResult as JSON or a colored text report.

--path-prefix and --commit demonstrate the client-side collaborator filter
documented for the surrounding service: the engine itself ignores both and
always scans the full repository; this command filters the printed result
afterward.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().Int64Var(&scanMaxFileSize, "max-file-size", 0, "per-blob byte ceiling (default 1,000,000)")
	scanCmd.Flags().BoolVar(&scanHistory, "scan-history", false, "also scan version-control object revisions")
	scanCmd.Flags().IntVar(&scanHistoryCommitLimit, "history-commit-limit", 0, "cap the number of revisions examined (0 = unlimited)")
	scanCmd.Flags().Float64Var(&scanEntropyThreshold, "entropy-threshold", 0, "minimum Shannon entropy for a high-entropy finding (default 4.2)")
	scanCmd.Flags().BoolVar(&scanIncludeEntropy, "include-entropy", true, "enable the entropy matcher")
	scanCmd.Flags().BoolVar(&scanIncludePatterns, "include-patterns", true, "enable the pattern matcher")
	scanCmd.Flags().StringVar(&scanRulesPath, "rules", "", "path to a rule-config JSON file (overrides <repo>/rules.json)")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "output file path (default: stdout)")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "text", "output format: text or json")
	scanCmd.Flags().StringVar(&scanFailOn, "fail-on", "none", "exit non-zero if any finding's severity is at or above this level (info, low, medium, high, critical, none)")
	scanCmd.Flags().StringVar(&scanPathPrefix, "path-prefix", "", "filter printed findings to paths with this prefix")
	scanCmd.Flags().StringVar(&scanCommit, "commit", "", "filter printed findings to this source (a commit hash, or \"workdir\")")
}

func runScan(cmd *cobra.Command, args []string) error {
	repoPath := "."
	if len(args) > 0 {
		repoPath = args[0]
	}
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "vaultscan: resolving path: %v", err)
	}

	cfg, err := resolveScanConfig(cmd, absPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "vaultscan: %v", err)
	}

	result, err := engine.ScanRepository(cmd.Context(), cfg)
	if err != nil {
		var ce *engine.ConfigError
		if errors.As(err, &ce) {
			return exitError(ExitScanFailed, "vaultscan: %v", ce)
		}
		return exitError(ExitScanFailed, "vaultscan: %v", err)
	}

	seedRedactionCache(result)

	result.Findings = filterCollaboratorContract(result.Findings, scanPathPrefix, scanCommit)

	var out io.Writer = cmd.OutOrStdout()
	if scanOutput != "" {
		f, err := createOutputFile(scanOutput)
		if err != nil {
			return exitError(ExitInvalidArgs, "vaultscan: opening output file: %v", err)
		}
		defer f.Close() //nolint:errcheck // best-effort close on write path
		out = f
	}

	switch strings.ToLower(scanFormat) {
	case "json":
		if err := writeJSON(out, result); err != nil {
			return exitError(ExitScanFailed, "vaultscan: writing output: %v", err)
		}
	case "text", "":
		writeTextReport(out, result)
	default:
		return exitError(ExitInvalidArgs, "vaultscan: unknown format %q (want text or json)", scanFormat)
	}

	if exceedsFailOn(result.Findings, scanFailOn) {
		return exitError(ExitFindings, "")
	}
	return nil
}

// resolveScanConfig applies the documented precedence chain — CLI flag >
// .vaultscan.yaml > global ~/.config/vaultscan/config.yaml > built-in
// default — independently per field, using cobra's Changed() to detect an
// explicit CLI override.
func resolveScanConfig(cmd *cobra.Command, absPath string) (scanmodel.ScanConfig, error) {
	fileCfg, err := config.Load(absPath)
	if err != nil {
		return scanmodel.ScanConfig{}, fmt.Errorf("loading %s: %w", config.FileName, err)
	}
	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return scanmodel.ScanConfig{}, fmt.Errorf("loading global config: %w", err)
	}

	cfg := scanmodel.ScanConfig{RepoPath: absPath}

	cfg.MaxFileSize = firstNonZeroInt64(
		flagInt64(cmd, "max-file-size", scanMaxFileSize),
		fileCfg.MaxFileSize,
		globalCfg.MaxFileSize,
	)
	cfg.HistoryCommitLimit = firstNonZeroInt(
		flagInt(cmd, "history-commit-limit", scanHistoryCommitLimit),
		fileCfg.HistoryCommitLimit,
		globalCfg.HistoryCommitLimit,
	)
	cfg.EntropyThreshold = firstNonZeroFloat(
		flagFloat64(cmd, "entropy-threshold", scanEntropyThreshold),
		fileCfg.EntropyThreshold,
		globalCfg.EntropyThreshold,
	)
	cfg.RulesConfigPath = firstNonEmptyString(
		flagString(cmd, "rules", scanRulesPath),
		fileCfg.RulesConfigPath,
		globalCfg.RulesConfigPath,
	)

	cfg.ScanHistory = firstNonNilBool(
		flagBoolIfChanged(cmd, "scan-history", scanHistory),
		fileCfg.ScanHistory,
		globalCfg.ScanHistory,
		false,
	)
	cfg.IncludeEntropy = firstNonNilBool(
		flagBoolIfChanged(cmd, "include-entropy", scanIncludeEntropy),
		fileCfg.IncludeEntropy,
		globalCfg.IncludeEntropy,
		true,
	)
	cfg.IncludePatterns = firstNonNilBool(
		flagBoolIfChanged(cmd, "include-patterns", scanIncludePatterns),
		fileCfg.IncludePatterns,
		globalCfg.IncludePatterns,
		true,
	)

	return cfg, nil
}

// filterCollaboratorContract applies spec.md §6's documented client-side
// filter: path.startswith(target_path_prefix) and
// (source == commit_hash or source == "workdir"). A workdir finding always
// survives the commit filter — only history findings are filtered by hash.
func filterCollaboratorContract(findings []scanmodel.Finding, pathPrefix, commit string) []scanmodel.Finding {
	if pathPrefix == "" && commit == "" {
		return findings
	}
	var out []scanmodel.Finding
	for _, f := range findings {
		if pathPrefix != "" && !strings.HasPrefix(f.Path, pathPrefix) {
			continue
		}
		if commit != "" && f.Source != commit && f.Source != "workdir" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// seedRedactionCache registers the excerpt of every critical-severity
// finding so a later error path never echoes a discovered secret verbatim.
func seedRedactionCache(result scanmodel.ScanResult) {
	for _, f := range result.Findings {
		if f.Severity == "critical" {
			redact.Seed(f.Excerpt)
		}
	}
}

func writeJSON(w io.Writer, result scanmodel.ScanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
