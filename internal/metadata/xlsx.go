// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package metadata

import (
	"github.com/xuri/excelize/v2"

	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

const xlsxHint = "Spreadsheet metadata may expose the authoring organization or individual."

func extractXlsx(path string) []scanmodel.Finding {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil
	}
	defer f.Close() //nolint:errcheck // best-effort close

	props, err := f.GetDocProps()
	if err != nil {
		return nil
	}

	var findings []scanmodel.Finding
	if props.Creator != "" {
		findings = append(findings, metaFinding("xlsx_creator", "creator: "+props.Creator, "low", xlsxHint))
	}
	if props.LastModifiedBy != "" {
		findings = append(findings, metaFinding("xlsx_last_modified_by", "last_modified_by: "+props.LastModifiedBy, "low", xlsxHint))
	}
	if props.Title != "" {
		findings = append(findings, metaFinding("xlsx_title", "title: "+props.Title, "low", xlsxHint))
	}
	if props.Description != "" {
		findings = append(findings, metaFinding("xlsx_description", "description: "+props.Description, "low", xlsxHint))
	}
	if props.Subject != "" {
		findings = append(findings, metaFinding("xlsx_subject", "subject: "+props.Subject, "low", xlsxHint))
	}

	return findings
}
