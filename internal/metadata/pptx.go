// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package metadata

import "github.com/wardenclyffe/vaultscan/internal/scanmodel"

const pptxHint = "Presentation metadata may expose the authoring organization or individual."

func extractPptx(path string) []scanmodel.Finding {
	var findings []scanmodel.Finding

	if core, err := readCoreProps(path); err == nil {
		if core.Creator != "" {
			findings = append(findings, metaFinding("pptx_author", "author: "+core.Creator, "low", pptxHint))
		}
		if core.Description != "" {
			findings = append(findings, metaFinding("pptx_comments", "comments: "+core.Description, "low", pptxHint))
		}
	}
	if app, err := readAppProps(path); err == nil && app.Company != "" {
		findings = append(findings, metaFinding("pptx_company", "company: "+app.Company, "low", pptxHint))
	}

	return findings
}
