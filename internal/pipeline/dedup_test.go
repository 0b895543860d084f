// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

func TestDedup_CollapsesIdenticalKey(t *testing.T) {
	findings := []scanmodel.Finding{
		{Source: "workdir", Path: "a.go", Kind: "email", Excerpt: "x@y.com", Start: 1},
		{Source: "workdir", Path: "a.go", Kind: "email", Excerpt: "x@y.com", Start: 99},
	}

	out := Dedup(findings)

	assert.Len(t, out, 1)
	assert.Equal(t, 1, out[0].Start)
}

func TestDedup_KeepsDistinctKeys(t *testing.T) {
	findings := []scanmodel.Finding{
		{Source: "workdir", Path: "a.go", Kind: "email", Excerpt: "x@y.com"},
		{Source: "workdir", Path: "b.go", Kind: "email", Excerpt: "x@y.com"},
		{Source: "history", Path: "a.go", Kind: "email", Excerpt: "x@y.com"},
		{Source: "workdir", Path: "a.go", Kind: "phone", Excerpt: "x@y.com"},
		{Source: "workdir", Path: "a.go", Kind: "email", Excerpt: "other@y.com"},
	}

	out := Dedup(findings)

	assert.Len(t, out, 5)
}

func TestDedup_EmptyInput(t *testing.T) {
	out := Dedup(nil)
	assert.Empty(t, out)
}
