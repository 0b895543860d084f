// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsText_PlainText(t *testing.T) {
	text, ok := AsText([]byte("hello world"), 1000)
	assert.True(t, ok)
	assert.Equal(t, "hello world", text)
}

func TestAsText_OversizeSkipped(t *testing.T) {
	_, ok := AsText([]byte("hello world"), 5)
	assert.False(t, ok)
}

func TestAsText_NULByteSkipped(t *testing.T) {
	_, ok := AsText([]byte("hello\x00world"), 1000)
	assert.False(t, ok)
}

func TestAsText_InvalidUTF8Replaced(t *testing.T) {
	data := append([]byte("prefix-"), 0xff, 0xfe)
	data = append(data, []byte("-suffix")...)
	text, ok := AsText(data, 1000)
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(text, "prefix-"))
	assert.True(t, strings.HasSuffix(text, "-suffix"))
	assert.Contains(t, text, "�")
}
