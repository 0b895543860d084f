// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package metadata

import (
	"regexp"

	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	internalNetworkPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b[A-Za-z0-9.-]*\.(local|corp|intranet|internal)\b`),
		regexp.MustCompile(`(?i)\b(dev|staging|test|qa)[.-][A-Za-z0-9.-]+\b`),
		regexp.MustCompile(`\b192\.168\.\d{1,3}\.\d{1,3}\b`),
		regexp.MustCompile(`\b10\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`),
		regexp.MustCompile(`\b172\.(1[6-9]|2[0-9]|3[01])\.\d{1,3}\.\d{1,3}\b`),
	}

	usernamePathPattern = regexp.MustCompile(`[\\/](home|Users|user|users)[\\/][A-Za-z0-9_-]{3,}`)

	debugArtifactPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bTODO\b`),
		regexp.MustCompile(`\bFIXME\b`),
		regexp.MustCompile(`\bDEBUG\b`),
		regexp.MustCompile(`(?i)<!--[^>]*debug[^>]*-->`),
		regexp.MustCompile(`console\.log\(`),
		regexp.MustCompile(`print\(`),
		regexp.MustCompile(`log\(`),
	}
)

// textArtifacts runs the text-artifact heuristics over text: emails,
// internal-network references, usernames embedded in filesystem paths, and
// debug leftovers. It never sets Category/Severity directly — those are
// assigned uniformly by the enrichment stage's kind tables, the same as
// pattern-matcher findings.
func textArtifacts(text string) []scanmodel.Finding {
	var findings []scanmodel.Finding

	for _, m := range emailPattern.FindAllString(text, -1) {
		findings = append(findings, scanmodel.Finding{Kind: "email_in_text", Excerpt: truncate200(m)})
	}

	for _, pattern := range internalNetworkPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			findings = append(findings, scanmodel.Finding{Kind: "internal_network_artifact", Excerpt: truncate200(m)})
		}
	}

	for _, m := range usernamePathPattern.FindAllString(text, -1) {
		findings = append(findings, scanmodel.Finding{Kind: "username_in_path", Excerpt: truncate200("User path: " + m)})
	}

	for _, pattern := range debugArtifactPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			findings = append(findings, scanmodel.Finding{Kind: "debug_artifact", Excerpt: truncate200(m)})
		}
	}

	return findings
}

func truncate200(s string) string {
	if len(s) <= 200 {
		return s
	}
	return s[:200]
}
