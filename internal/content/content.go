// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

// Package content decides whether a candidate blob is textual content
// eligible for matching, and performs the lossy UTF-8 decode the matchers
// operate over.
package content

import (
	"bytes"
	"strings"
)

// AsText returns the lossy-decoded text of data if it qualifies as textual
// content: size within maxSize and free of NUL bytes. It returns ok=false
// when the blob is oversize or binary, in which case the caller skips it
// without ever invoking a matcher.
func AsText(data []byte, maxSize int64) (text string, ok bool) {
	if int64(len(data)) > maxSize {
		return "", false
	}
	if bytes.IndexByte(data, 0x00) != -1 {
		return "", false
	}
	return strings.ToValidUTF8(string(data), "�"), true
}
