// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

var severityRank = map[string]int{
	"info":     0,
	"low":      1,
	"medium":   2,
	"high":     3,
	"critical": 4,
}

var (
	colorCritical = color.New(color.FgRed, color.Bold)
	colorHigh     = color.New(color.FgRed)
	colorMedium   = color.New(color.FgYellow)
	colorLow      = color.New(color.FgCyan)
	colorInfo     = color.New(color.FgWhite)
	colorBold     = color.New(color.Bold)
)

// colorSeverity renders a severity label in the color conventionally used
// for that level across the report.
func colorSeverity(severity string) string {
	switch severity {
	case "critical":
		return colorCritical.Sprint(strings.ToUpper(severity))
	case "high":
		return colorHigh.Sprint(strings.ToUpper(severity))
	case "medium":
		return colorMedium.Sprint(strings.ToUpper(severity))
	case "low":
		return colorLow.Sprint(strings.ToUpper(severity))
	default:
		return colorInfo.Sprint(strings.ToUpper(severity))
	}
}

// exceedsFailOn reports whether any finding's severity is at or above the
// named threshold. A threshold of "" or "none" never fails.
func exceedsFailOn(findings []scanmodel.Finding, threshold string) bool {
	threshold = strings.ToLower(threshold)
	if threshold == "" || threshold == "none" {
		return false
	}
	min, ok := severityRank[threshold]
	if !ok {
		return false
	}
	for _, f := range findings {
		if severityRank[f.Severity] >= min {
			return true
		}
	}
	return false
}

// writeTextReport prints a human-readable, severity-sorted summary of a
// ScanResult: a per-severity count header, then one line per finding.
func writeTextReport(w io.Writer, result scanmodel.ScanResult) {
	sorted := make([]scanmodel.Finding, len(result.Findings))
	copy(sorted, result.Findings)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if severityRank[a.Severity] != severityRank[b.Severity] {
			return severityRank[a.Severity] > severityRank[b.Severity]
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Kind < b.Kind
	})

	fmt.Fprintf(w, "%s %s\n", colorBold.Sprint("vaultscan report for"), result.RepoPath) //nolint:errcheck // best-effort stdout write

	if len(sorted) == 0 {
		fmt.Fprintln(w, "no findings") //nolint:errcheck // best-effort stdout write
		return
	}

	counts := map[string]int{}
	for _, f := range sorted {
		counts[f.Severity]++
	}
	for _, sev := range []string{"critical", "high", "medium", "low", "info"} {
		if counts[sev] > 0 {
			fmt.Fprintf(w, "  %s: %d\n", colorSeverity(sev), counts[sev]) //nolint:errcheck // best-effort stdout write
		}
	}
	fmt.Fprintln(w) //nolint:errcheck // best-effort stdout write

	for _, f := range sorted {
		fmt.Fprintf(w, "[%s] %s (%s @ %s) kind=%s\n    %s\n", //nolint:errcheck // best-effort stdout write
			colorSeverity(f.Severity), f.Path, f.Source, f.Category, f.Kind, f.Excerpt)
		if f.Hint != nil {
			fmt.Fprintf(w, "    hint: %s\n", *f.Hint) //nolint:errcheck // best-effort stdout write
		}
	}
}
