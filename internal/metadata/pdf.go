// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package metadata

import (
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

const pdfHint = "PDF metadata may contain the authoring organization, author, or the software used to produce it."

// extractPDF reads the PDF Info dictionary via pdfcpu's info API (the same
// dictionary the `pdfcpu info` command reports) and emits one finding per
// non-empty top-level key, stripped of a leading "/" and lowercased per the
// documented key-shape contract.
func extractPDF(path string) []scanmodel.Finding {
	info, err := api.PDFInfoFile(path, nil, nil)
	if err != nil || info == nil {
		return nil
	}

	fields := map[string]string{
		"title":        info.Title,
		"author":       info.Author,
		"subject":      info.Subject,
		"creator":      info.Creator,
		"producer":     info.Producer,
		"keywords":     info.Keywords,
		"creationdate": info.CreationDate,
		"moddate":      info.ModDate,
	}

	var findings []scanmodel.Finding
	for key, value := range fields {
		if value == "" {
			continue
		}
		findings = append(findings, metaFinding("pdf_"+key, key+": "+value, "low", pdfHint))
	}
	for key, value := range info.Properties {
		if value == "" {
			continue
		}
		findings = append(findings, metaFinding("pdf_"+normalizeKey(key), normalizeKey(key)+": "+value, "low", pdfHint))
	}

	return findings
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, "/"))
}
