// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package gitcli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardenclyffe/vaultscan/internal/testable"
)

func TestSetExecutor_NonNil(t *testing.T) {
	mock := &testable.MockCommandExecutor{LookPathResult: "/mock/git"}
	SetExecutor(mock)
	defer SetExecutor(nil)

	// The mock should now be active — LookPath should return mock result.
	path, err := executor.LookPath("git")
	require.NoError(t, err)
	assert.Equal(t, "/mock/git", path)
}

func TestSetExecutor_Nil(t *testing.T) {
	// Set a mock first, then restore to default.
	mock := &testable.MockCommandExecutor{LookPathResult: "/mock/git"}
	SetExecutor(mock)
	SetExecutor(nil)

	// After restoring, it should be a RealCommandExecutor (non-nil, non-mock).
	assert.NotNil(t, executor)
	// Verify it works as real executor — git should be on PATH.
	err := Available()
	assert.NoError(t, err)
}

func TestAvailable_GitNotFound(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		LookPathErr: fmt.Errorf("exec: \"git\": executable file not found in $PATH"),
	})
	defer SetExecutor(nil)

	err := Available()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git not found on PATH")
}

func TestExec_MockCommandFailure(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		DefaultError: "fatal: not a git repository",
	})
	defer SetExecutor(nil)

	_, err := Exec(context.Background(), "/tmp", "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git status")
}

func TestExec_MockCommandSuccess(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		CommandOutputs: map[string]string{
			"git --version": "git version 2.40.0",
		},
	})
	defer SetExecutor(nil)

	out, err := Exec(context.Background(), ".", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "git version")
}

func TestRevList_MockExecFailure(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		DefaultError: "fatal: not a git repository",
	})
	defer SetExecutor(nil)

	_, err := RevList(context.Background(), "/tmp", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git rev-list")
}

func TestRevList_MockOutput(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		CommandOutputs: map[string]string{
			"git rev-list --all --remotes --tags": "abcdef0\nfedcba0\n\n",
		},
	})
	defer SetExecutor(nil)

	hashes, err := RevList(context.Background(), "/tmp", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"abcdef0", "fedcba0"}, hashes)
}

func TestRevList_MockMaxCount(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		CommandOutputs: map[string]string{
			"git rev-list --all --remotes --tags --max-count=1": "abcdef0\n",
		},
	})
	defer SetExecutor(nil)

	hashes, err := RevList(context.Background(), "/tmp", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"abcdef0"}, hashes)
}

func TestLsTree_MockExecFailure(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		DefaultError: "fatal: not a valid object name",
	})
	defer SetExecutor(nil)

	_, err := LsTree(context.Background(), "/tmp", "abcdef0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git ls-tree")
}

func TestLsTree_MockOutput(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		CommandOutputs: map[string]string{
			"git ls-tree -r --name-only abcdef0": "main.go\nlib/util.go\n",
		},
	})
	defer SetExecutor(nil)

	paths, err := LsTree(context.Background(), "/tmp", "abcdef0")
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go", "lib/util.go"}, paths)
}

func TestBlobSize_MockExecFailure(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		DefaultError: "fatal: path does not exist",
	})
	defer SetExecutor(nil)

	_, err := BlobSize(context.Background(), "/tmp", "abcdef0", "missing.go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git cat-file")
}

func TestBlobSize_MockMalformedOutput(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		DefaultOutput: "not-a-number\n",
	})
	defer SetExecutor(nil)

	_, err := BlobSize(context.Background(), "/tmp", "abcdef0", "file.go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing blob size")
}

func TestBlobSize_MockOutput(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		CommandOutputs: map[string]string{
			"git cat-file -s abcdef0:file.go": "42\n",
		},
	})
	defer SetExecutor(nil)

	size, err := BlobSize(context.Background(), "/tmp", "abcdef0", "file.go")
	require.NoError(t, err)
	assert.Equal(t, int64(42), size)
}

func TestShowBlob_MockExecFailure(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		DefaultError: "fatal: path does not exist",
	})
	defer SetExecutor(nil)

	_, err := ShowBlob(context.Background(), "/tmp", "abcdef0", "missing.go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git show")
}

func TestShowBlob_MockOutput(t *testing.T) {
	SetExecutor(&testable.MockCommandExecutor{
		CommandOutputs: map[string]string{
			"git show abcdef0:file.go": "package main\n",
		},
	})
	defer SetExecutor(nil)

	content, err := ShowBlob(context.Background(), "/tmp", "abcdef0", "file.go")
	require.NoError(t, err)
	assert.Equal(t, "package main\n", string(content))
}
