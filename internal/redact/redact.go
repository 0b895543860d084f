// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

// Package redact provides utilities to strip sensitive values from strings
// before they appear in vaultscan's own output, logs, or error messages.
//
// Two independent sources feed the redaction cache: vaultscan's own
// environment variables (so a misconfigured credential never leaks through
// a CLI error), and excerpts from critical-severity findings the engine
// itself just discovered (so a fatal scan error whose text happens to
// quote part of a scanned secret is never echoed verbatim to a terminal or
// log sink).
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output.
var sensitiveEnvVars = []string{
	"VAULTSCAN_RULES_TOKEN",
	"VAULTSCAN_API_KEY",
}

var (
	mu            sync.Mutex
	cachedSecrets []string
	envLoaded     bool
)

func loadEnvSecretsLocked() {
	if envLoaded {
		return
	}
	envLoaded = true
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val != "" && len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// resetCache resets the cached secrets. Used by tests that change env vars
// or seeded values between calls.
func resetCache() {
	mu.Lock()
	defer mu.Unlock()
	cachedSecrets = nil
	envLoaded = false
}

// ResetForTest resets the cached secrets so tests in other packages can
// verify redaction behavior after setting env vars or seeding values.
func ResetForTest() { resetCache() }

// Seed registers additional secret values — typically the excerpt of each
// critical-severity scanmodel.Finding from a completed scan — so that a
// later fatal error message never echoes a discovered credential verbatim.
// Values under 4 characters are ignored to avoid redacting common
// substrings.
func Seed(values ...string) {
	mu.Lock()
	defer mu.Unlock()
	for _, v := range values {
		if len(v) >= 4 {
			cachedSecrets = append(cachedSecrets, v)
		}
	}
}

// String replaces any occurrence of a known sensitive value — an env var
// value or a seeded finding excerpt — with "[REDACTED]". Returns the
// original string if no secrets are found.
func String(s string) string {
	mu.Lock()
	loadEnvSecretsLocked()
	secrets := make([]string, len(cachedSecrets))
	copy(secrets, cachedSecrets)
	mu.Unlock()

	for _, secret := range secrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}
