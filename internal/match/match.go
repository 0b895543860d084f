// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

// Package match implements the two content matchers that run over a
// textual blob: the literal-pattern matcher and the Shannon-entropy
// matcher over long base64-like tokens.
package match

import (
	"math"
	"regexp"

	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

// entropyTokenPattern matches the candidate high-entropy token shape: long
// runs of base64-alphabet characters.
var entropyTokenPattern = regexp.MustCompile(`[A-Za-z0-9+/=]{20,}`)

// maxExcerptLen bounds every excerpt produced by the content matchers.
const maxExcerptLen = 200

// Patterns runs every rule in rules against text and returns one finding per
// non-overlapping match, excerpt-windowed ±20 characters around the match.
func Patterns(rules []scanmodel.Rule, source, path, text string) []scanmodel.Finding {
	var findings []scanmodel.Finding
	for _, rule := range rules {
		for _, loc := range rule.Pattern.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			findings = append(findings, scanmodel.Finding{
				Source:  source,
				Path:    path,
				Kind:    rule.Name,
				Excerpt: truncate(window(text, start-20, end+20), maxExcerptLen),
				Start:   start,
				End:     end,
			})
		}
	}
	return findings
}

// Entropy scans text for long base64-like tokens and reports those whose
// Shannon entropy meets threshold, excerpt-windowed ±10 characters around
// the token.
func Entropy(text, source, path string, threshold float64) []scanmodel.Finding {
	var findings []scanmodel.Finding
	for _, loc := range entropyTokenPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		h := shannonEntropy([]byte(text[start:end]))
		if h < threshold {
			continue
		}
		entropy := h
		findings = append(findings, scanmodel.Finding{
			Source:  source,
			Path:    path,
			Kind:    "high_entropy",
			Excerpt: truncate(window(text, start-10, end+10), maxExcerptLen),
			Start:   start,
			End:     end,
			Entropy: &entropy,
		})
	}
	return findings
}

// shannonEntropy computes H = -Σ p_i·log2(p_i) over byte frequencies.
func shannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}
	length := float64(len(data))
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / length
		h -= p * math.Log2(p)
	}
	return h
}

// window clamps [start,end) to the bounds of text and returns the slice.
func window(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start > end {
		start = end
	}
	return text[start:end]
}

// truncate returns the first n runes of s (s may already be shorter),
// cutting on rune boundaries so a multi-byte character straddling the cut
// is dropped whole rather than left as a corrupt trailing byte sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
