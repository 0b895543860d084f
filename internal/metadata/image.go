// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package metadata

import (
	"fmt"
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

const (
	exifGPSHint = "The image embeds geolocation metadata. Strip EXIF data before publishing."
	exifHint    = "EXIF metadata may expose the capturing device, software, or author."
)

// exifTextTags are the EXIF fields whose values (when present) are surfaced
// directly, besides GPSInfo which is reported as a presence-only finding.
// "Author" has no standard EXIF tag name (goexif exposes no such
// exif.FieldName); Artist is the closest real tag and is already covered.
var exifTextTags = []exif.FieldName{
	exif.Artist,
	exif.Copyright,
	exif.UserComment,
	exif.Software,
	exif.Make,
	exif.Model,
}

func extractEXIF(path string) []scanmodel.Finding {
	f, err := os.Open(path) //nolint:gosec // caller-controlled path
	if err != nil {
		return nil
	}
	defer f.Close() //nolint:errcheck // best-effort close

	x, err := exif.Decode(f)
	if err != nil {
		return nil
	}

	var findings []scanmodel.Finding

	if lat, long, err := x.LatLong(); err == nil && (lat != 0 || long != 0) {
		findings = append(findings, metaFinding("exif_gps", "GPS coordinates embedded", "medium", exifGPSHint))
	}

	for _, tag := range exifTextTags {
		t, err := x.Get(tag)
		if err != nil {
			continue
		}
		val := strings.Trim(t.String(), `"`)
		if val == "" {
			continue
		}
		kind := fmt.Sprintf("exif_%s", strings.ToLower(string(tag)))
		findings = append(findings, metaFinding(kind, string(tag)+": "+val, "low", exifHint))
	}

	return findings
}
