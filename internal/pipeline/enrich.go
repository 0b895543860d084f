// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

const (
	categorySecret   = "secret"
	categoryInfra    = "infra"
	categoryPII      = "pii"
	categoryMetadata = "metadata"
	categoryConfig   = "config"
)

var kindCategory = map[string]string{
	"aws_access_key_id":         categorySecret,
	"aws_secret_access_key":     categorySecret,
	"gcp_service_account_key":   categorySecret,
	"gcp_api_key":               categorySecret,
	"azure_storage_key":         categorySecret,
	"github_token":              categorySecret,
	"github_fine_grained":       categorySecret,
	"gitlab_personal_token":     categorySecret,
	"bitbucket_app_password":    categorySecret,
	"stripe_secret_key":         categorySecret,
	"stripe_restricted_key":     categorySecret,
	"paypal_bearer_token":       categorySecret,
	"google_oauth_client_id":    categorySecret,
	"google_oauth_client_secret": categorySecret,
	"firebase_api_key":          categorySecret,
	"telegram_bot_token":        categorySecret,
	"discord_bot_token":         categorySecret,
	"slack_token":               categorySecret,
	"twilio_api_key":            categorySecret,
	"pg_connection_uri":         categoryInfra,
	"mysql_connection_uri":      categoryInfra,
	"mongodb_connection_uri":    categoryInfra,
	"redis_connection_uri":      categoryInfra,
	"generic_password":          categorySecret,
	"generic_secret":            categorySecret,
	"jwt_token":                 categorySecret,
	"private_key_header":        categorySecret,
	"email":                     categoryPII,
	"phone":                     categoryPII,
	"high_entropy":              categorySecret,

	"email_in_text":             categoryMetadata,
	"internal_network_artifact": categoryMetadata,
	"username_in_path":          categoryMetadata,
	"debug_artifact":            categoryMetadata,
}

var kindBaseSeverity = map[string]string{
	"aws_secret_access_key":     "critical",
	"private_key_header":        "critical",
	"stripe_secret_key":         "critical",
	"stripe_restricted_key":     "critical",
	"paypal_bearer_token":       "critical",
	"github_token":              "high",
	"github_fine_grained":       "high",
	"gitlab_personal_token":     "high",
	"bitbucket_app_password":    "high",
	"telegram_bot_token":        "high",
	"discord_bot_token":         "high",
	"slack_token":               "high",
	"twilio_api_key":            "high",
	"gcp_service_account_key":   "high",
	"gcp_api_key":               "high",
	"firebase_api_key":          "high",
	"azure_storage_key":         "high",
	"pg_connection_uri":         "high",
	"mysql_connection_uri":      "high",
	"mongodb_connection_uri":    "high",
	"redis_connection_uri":      "high",
	"generic_password":          "medium",
	"generic_secret":            "medium",
	"jwt_token":                 "medium",
	"aws_access_key_id":         "medium",
	"google_oauth_client_id":    "low",
	"google_oauth_client_secret": "medium",
	"email":                     "low",
	"phone":                     "low",
	"high_entropy":              "medium",

	"email_in_text":             "low",
	"internal_network_artifact": "medium",
	"username_in_path":          "low",
	"debug_artifact":            "info",
}

var severityRank = map[string]int{
	"info": 0, "low": 1, "medium": 2, "high": 3, "critical": 4,
}

func maxSeverity(a, b string) string {
	if severityRank[a] >= severityRank[b] {
		return a
	}
	return b
}

var categoryHint = map[string]string{
	categorySecret: "Rotate this credential and move it to a secret store (environment variable or CI secret).",
	categoryInfra:  "Verify this infrastructure endpoint is not exposed outside its intended network.",
	categoryPII:    "Confirm this personal data needs to be disclosed here.",
	categoryConfig: "Review this configuration value for correctness and safe defaults.",
}

// Enrich classifies each finding in place with category, severity, and a
// remediation hint, applying the path-aware severity uplift unconditionally.
// Matchers that already set Category/Severity/Hint (the metadata extractors)
// are preserved rather than overwritten by the kind tables; only fields left
// zero-valued by the matcher that produced the finding fall back to table
// lookup.
func Enrich(findings []scanmodel.Finding) {
	for i := range findings {
		enrichOne(&findings[i])
	}
}

func enrichOne(f *scanmodel.Finding) {
	if f.Category == "" {
		category, ok := kindCategory[f.Kind]
		if !ok {
			category = categorySecret
		}
		f.Category = category
	}

	severity := f.Severity
	if severity == "" {
		base, ok := kindBaseSeverity[f.Kind]
		if !ok {
			base = "medium"
		}
		severity = base
	}
	severity = maxSeverity(severity, pathUplift(f.Path))
	f.Severity = severity

	if f.Hint == nil {
		if hint, ok := categoryHint[f.Category]; ok {
			f.Hint = &hint
		}
	}
}

func pathUplift(path string) string {
	lower := strings.ToLower(path)
	filename := strings.ToLower(filepath.Base(path))

	if strings.HasPrefix(filename, ".env") || filename == "env" || filename == "secrets" {
		return "high"
	}
	if strings.Contains(filename, "config") || strings.Contains(lower, "/config/") {
		return "high"
	}
	for _, part := range []string{"/prod", "/production", "k8s", "kubernetes", "docker-compose"} {
		if strings.Contains(lower, part) {
			return "high"
		}
	}
	return "info"
}
