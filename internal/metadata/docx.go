// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package metadata

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"

	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

// ooxmlCoreProps mirrors the docProps/core.xml schema shared by Word,
// Excel, and PowerPoint packages. encoding/xml matches elements by local
// name when a tag carries no namespace prefix, so this single struct reads
// correctly regardless of which of the dc:/cp:/dcterms: namespaces a given
// producer used for each element.
type ooxmlCoreProps struct {
	XMLName        xml.Name `xml:"coreProperties"`
	Creator        string   `xml:"creator"`
	Description    string   `xml:"description"`
	Category       string   `xml:"category"`
	LastModifiedBy string   `xml:"lastModifiedBy"`
	Subject        string   `xml:"subject"`
	Title          string   `xml:"title"`
}

// ooxmlAppProps mirrors the docProps/app.xml schema, which carries fields
// core.xml does not (notably Company).
type ooxmlAppProps struct {
	XMLName xml.Name `xml:"Properties"`
	Company string   `xml:"Company"`
}

var errOOXMLPartNotFound = errors.New("ooxml part not found in archive")

// readOOXMLPart opens the zip-packaged OOXML document at path and
// unmarshals the named internal XML part into dest.
func readOOXMLPart(path, partName string, dest any) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close() //nolint:errcheck // best-effort close

	for _, f := range r.File {
		if f.Name != partName {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close() //nolint:errcheck // best-effort close
		data, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		return xml.Unmarshal(data, dest)
	}
	return errOOXMLPartNotFound
}

func readCoreProps(path string) (ooxmlCoreProps, error) {
	var core ooxmlCoreProps
	err := readOOXMLPart(path, "docProps/core.xml", &core)
	return core, err
}

func readAppProps(path string) (ooxmlAppProps, error) {
	var app ooxmlAppProps
	err := readOOXMLPart(path, "docProps/app.xml", &app)
	return app, err
}

const docxHint = "Word document metadata may expose the authoring organization or individual."

func extractDocx(path string) []scanmodel.Finding {
	var findings []scanmodel.Finding

	if core, err := readCoreProps(path); err == nil {
		if core.Creator != "" {
			findings = append(findings, metaFinding("docx_author", "author: "+core.Creator, "low", docxHint))
		}
		if core.Description != "" {
			findings = append(findings, metaFinding("docx_comments", "comments: "+core.Description, "low", docxHint))
		}
		if core.Category != "" {
			findings = append(findings, metaFinding("docx_category", "category: "+core.Category, "low", docxHint))
		}
		if core.LastModifiedBy != "" {
			findings = append(findings, metaFinding("docx_last_modified_by", "last_modified_by: "+core.LastModifiedBy, "low", docxHint))
		}
	}
	if app, err := readAppProps(path); err == nil && app.Company != "" {
		findings = append(findings, metaFinding("docx_company", "company: "+app.Company, "low", docxHint))
	}

	return findings
}
