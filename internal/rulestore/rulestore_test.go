// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package rulestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	rules, err := Load(dir, "")
	require.NoError(t, err)
	assert.NotEmpty(t, rules)

	names := map[string]bool{}
	for _, r := range rules {
		names[r.Name] = true
	}
	assert.True(t, names["aws_access_key_id"])
	assert.True(t, names["private_key_header"])
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rules":[{"name":"custom_kind","pattern":"foo[0-9]+"}]}`), 0o600))

	rules, err := Load(dir, path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "custom_kind", rules[0].Name)
	assert.True(t, rules[0].Pattern.MatchString("foo123"))
}

func TestLoad_RepoRulesJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rules":[{"name":"repo_kind","pattern":"bar"}]}`), 0o600))

	rules, err := Load(dir, "")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "repo_kind", rules[0].Name)
}

func TestLoad_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))

	_, err := Load(dir, path)
	assert.Error(t, err)
}

func TestLoad_MissingRulesArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "norules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"other":[]}`), 0o600))

	_, err := Load(dir, path)
	assert.Error(t, err)
}

func TestLoad_SkipsBadEntriesKeepsGood(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixed.json")
	content := `{"rules":[
		{"name":"","pattern":"x"},
		{"name":"no_pattern"},
		{"name":"bad_regex","pattern":"("},
		{"name":"good","pattern":"abc"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rules, err := Load(dir, path)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "good", rules[0].Name)
}

func TestLoad_AllEntriesUnusableFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "allbad.json")
	content := `{"rules":[{"name":"","pattern":""},{"name":"x","pattern":"("}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rules, err := Load(dir, path)
	require.NoError(t, err)
	assert.Len(t, rules, len(Defaults()))
	assert.Equal(t, Defaults()[0].Name, rules[0].Name)
}

func TestDefaults_CoverSeverityTableKinds(t *testing.T) {
	rules := Defaults()
	names := map[string]bool{}
	for _, r := range rules {
		names[r.Name] = true
	}
	for _, kind := range []string{
		"aws_access_key_id", "aws_secret_access_key", "private_key_header",
		"stripe_secret_key", "stripe_restricted_key", "paypal_bearer_token",
		"github_token", "github_fine_grained", "gitlab_personal_token",
		"bitbucket_app_password", "telegram_bot_token", "discord_bot_token",
		"slack_token", "twilio_api_key", "gcp_service_account_key",
		"gcp_api_key", "firebase_api_key", "azure_storage_key",
		"pg_connection_uri", "mysql_connection_uri", "mongodb_connection_uri",
		"redis_connection_uri", "generic_password", "generic_secret",
		"jwt_token", "google_oauth_client_id", "google_oauth_client_secret",
		"email", "phone",
	} {
		assert.True(t, names[kind], "default rules missing %s", kind)
	}
}
