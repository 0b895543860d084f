// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

func findByKind(findings []scanmodel.Finding, kind string) (scanmodel.Finding, bool) {
	for _, f := range findings {
		if f.Kind == kind {
			return f, true
		}
	}
	return scanmodel.Finding{}, false
}

func TestTextArtifacts_Email(t *testing.T) {
	findings := textArtifacts("contact me at jane.doe@example.com please")
	f, ok := findByKind(findings, "email_in_text")
	require.True(t, ok)
	assert.Equal(t, "jane.doe@example.com", f.Excerpt)
}

func TestTextArtifacts_InternalNetwork(t *testing.T) {
	for _, text := range []string{
		"host db01.internal responded",
		"deployed to staging.example.com",
		"bind 192.168.1.5:8080",
		"bind 10.0.0.5:8080",
		"bind 172.16.5.5:8080",
	} {
		findings := textArtifacts(text)
		_, ok := findByKind(findings, "internal_network_artifact")
		assert.True(t, ok, "expected internal_network_artifact for %q", text)
	}
}

func TestTextArtifacts_UsernameInPath(t *testing.T) {
	findings := textArtifacts(`stack trace at /home/jdoe/project/main.go`)
	f, ok := findByKind(findings, "username_in_path")
	require.True(t, ok)
	assert.Contains(t, f.Excerpt, "User path: ")
}

func TestTextArtifacts_DebugArtifact(t *testing.T) {
	for _, text := range []string{
		"// TODO: remove before release",
		"// FIXME: handle nil",
		"<!-- debug output -->",
		"# DEBUG enabled",
		"console.log(x)",
		"print(x)",
	} {
		findings := textArtifacts(text)
		_, ok := findByKind(findings, "debug_artifact")
		assert.True(t, ok, "expected debug_artifact for %q", text)
	}
}

func TestTextArtifacts_NoArtifacts(t *testing.T) {
	findings := textArtifacts("just some ordinary prose with nothing special")
	assert.Empty(t, findings)
}
