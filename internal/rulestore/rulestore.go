// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

// Package rulestore loads and holds the active set of named regular
// expressions a scan matches content against. The store is loaded once per
// scan and passed explicitly through the pipeline rather than held in a
// package global, so that two concurrent scans never contend over a shared
// mutable rule list.
package rulestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

// fileConfig mirrors the external rule-config JSON shape documented as the
// stable wire contract: {"rules": [{"name": "...", "pattern": "..."}]}.
// Unknown extra keys are ignored by encoding/json's default decoding.
type fileConfig struct {
	Rules []ruleEntry `json:"rules"`
}

type ruleEntry struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// defaultDefs is the built-in rule list, ported from the original scanner's
// pattern table. googleOAuthClientSecret is deliberately left with its
// open-ended trailing character class; see DESIGN.md.
var defaultDefs = []ruleEntry{
	{"aws_access_key_id", `AKIA[0-9A-Z]{16}`},
	{"aws_secret_access_key", `(?:[^A-Za-z0-9/+]|^)[A-Za-z0-9/+=]{40}(?:[^A-Za-z0-9/+=]|$)`},
	{"gcp_service_account_key", `"type":\s*"service_account"`},
	{"gcp_api_key", `AIza[0-9A-Za-z\-_]{35}`},
	{"azure_storage_key", `(?i)AccountKey\s*=\s*[A-Za-z0-9+/=]{40,}`},
	{"github_token", `ghp_[A-Za-z0-9]{36}`},
	{"github_fine_grained", `github_pat_[A-Za-z0-9_]{82,110}`},
	{"gitlab_personal_token", `glpat-[A-Za-z0-9-_]{20,40}`},
	{"bitbucket_app_password", `x-token-auth:[A-Za-z0-9]{20,40}`},
	{"stripe_secret_key", `sk_live_[0-9a-zA-Z]{24,99}`},
	{"stripe_restricted_key", `rk_live_[0-9a-zA-Z]{24,99}`},
	{"paypal_bearer_token", `access_token\$production\$[A-Za-z0-9._-]{10,}`},
	{"google_oauth_client_id", `[0-9]{10,}-[0-9a-z]{32}\.apps\.googleusercontent\.com`},
	{"google_oauth_client_secret", `(?i)google.*client.*secret['"]?\s*[:=]\s*['"][0-9A-Za-z-_]{8,}`},
	{"firebase_api_key", `AIza[0-9A-Za-z\-_]{35}`},
	{"telegram_bot_token", `\b\d{8,12}:[A-Za-z0-9_-]{30,60}\b`},
	{"discord_bot_token", `[\w-]{24}\.[\w-]{6}\.[\w-]{27}`},
	{"slack_token", `xox[baprs]-[A-Za-z0-9]{10,48}`},
	{"twilio_api_key", `SK[0-9a-fA-F]{32}`},
	{"pg_connection_uri", `postgres(?:ql)?://\S+`},
	{"mysql_connection_uri", `mysql://\S+`},
	{"mongodb_connection_uri", `mongodb(?:\+srv)?://\S+`},
	{"redis_connection_uri", `redis://\S+`},
	{"generic_password", `(?i)password\s*[:=]\s*["']?[^"'\s]{6,}`},
	{"generic_secret", `(?i)secret\s*[:=]\s*["']?[A-Za-z0-9/+_.-]{8,}`},
	{"jwt_token", `eyJ[A-Za-z0-9_-]+?\.[A-Za-z0-9_-]+?\.[A-Za-z0-9_-]{10,}`},
	{"private_key_header", `-----BEGIN (RSA|DSA|EC|OPENSSH|PGP) PRIVATE KEY-----`},
	{"email", `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`},
	{"phone", `\+?\d{1,3}[\s-]?\(?\d{2,4}\)?[\s-]\d{3,4}[\s-]?\d{3,4}`},
}

// Load resolves the active rule set for a scan: explicit rulesConfigPath,
// then "<repoPath>/rules.json", then the built-in defaults — in that order.
func Load(repoPath, rulesConfigPath string) ([]scanmodel.Rule, error) {
	if rulesConfigPath != "" {
		return loadFromFile(rulesConfigPath)
	}

	defaultPath := filepath.Join(repoPath, "rules.json")
	if _, err := os.Stat(defaultPath); err == nil {
		return loadFromFile(defaultPath)
	}

	return compile(defaultDefs), nil
}

// loadFromFile reads and compiles a rule-config JSON file. An unreadable or
// malformed file is a fatal error; individual unusable entries are skipped,
// and if every entry turns out unusable the built-in defaults are used.
func loadFromFile(path string) ([]scanmodel.Rule, error) {
	data, err := os.ReadFile(path) //nolint:gosec // caller-controlled path
	if err != nil {
		return nil, fmt.Errorf("reading rules config %s: %w", path, err)
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing rules config %s: %w", path, err)
	}
	if raw.Rules == nil {
		return nil, fmt.Errorf("rules config %s: missing \"rules\" array", path)
	}

	var rules []scanmodel.Rule
	for _, entry := range raw.Rules {
		if entry.Name == "" || entry.Pattern == "" {
			continue
		}
		re, err := regexp.Compile(entry.Pattern)
		if err != nil {
			continue
		}
		rules = append(rules, scanmodel.Rule{Name: entry.Name, Pattern: re})
	}

	if len(rules) == 0 {
		return compile(defaultDefs), nil
	}
	return rules, nil
}

// compile turns a literal entry list into compiled rules, panicking on a bad
// pattern since defaultDefs is a fixed, test-covered constant.
func compile(defs []ruleEntry) []scanmodel.Rule {
	rules := make([]scanmodel.Rule, 0, len(defs))
	for _, d := range defs {
		rules = append(rules, scanmodel.Rule{Name: d.Name, Pattern: regexp.MustCompile(d.Pattern)})
	}
	return rules
}

// Defaults returns the built-in rule set, useful for callers that want the
// default rules without going through the file-lookup chain (e.g. a rule
// file consisting entirely of unusable entries falls back to these).
func Defaults() []scanmodel.Rule {
	return compile(defaultDefs)
}
