// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

// Package gitcli provides native git CLI execution for the history
// enumerator. It shells out to the system git binary using the exact
// subcommands and output formats the engine's history enumerator depends on
// (rev-list, ls-tree, cat-file -s, show), so the engine's collaborator
// contract stays bit-exact with what a real git binary produces.
package gitcli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/wardenclyffe/vaultscan/internal/testable"
)

// executor is the package-level CommandExecutor used by Available and Exec.
// It defaults to the real os/exec implementation.
var executor testable.CommandExecutor = testable.DefaultExecutor()

// SetExecutor replaces the package-level CommandExecutor. Pass nil to restore
// the default production executor. This is intended for testing.
func SetExecutor(e testable.CommandExecutor) {
	if e == nil {
		executor = testable.DefaultExecutor()
		return
	}
	executor = e
}

// Available returns nil if git is on PATH, or an error otherwise.
func Available() error {
	_, err := executor.LookPath("git")
	if err != nil {
		return fmt.Errorf("git not found on PATH: %w", err)
	}
	return nil
}

// Exec runs git with the given arguments in repoDir and returns combined stdout.
func Exec(ctx context.Context, repoDir string, args ...string) (string, error) {
	cmd := executor.CommandContext(ctx, "git", args...)
	cmd.Dir = repoDir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

// RevList returns every commit hash reachable across branches, remotes, and
// tags, via `git rev-list --all --remotes --tags`. If limit is positive, it
// is passed through as --max-count.
func RevList(ctx context.Context, repoDir string, limit int) ([]string, error) {
	args := []string{"rev-list", "--all", "--remotes", "--tags"}
	if limit > 0 {
		args = append(args, fmt.Sprintf("--max-count=%d", limit))
	}
	out, err := Exec(ctx, repoDir, args...)
	if err != nil {
		return nil, err
	}
	var hashes []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			hashes = append(hashes, line)
		}
	}
	return hashes, nil
}

// LsTree returns every repository-relative path tracked at commit, via
// `git ls-tree -r --name-only <commit>`.
func LsTree(ctx context.Context, repoDir, commit string) ([]string, error) {
	out, err := Exec(ctx, repoDir, "ls-tree", "-r", "--name-only", commit)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

// BlobSize returns the byte size of the blob at commit:path, via
// `git cat-file -s <commit>:<path>`, without reading its content.
func BlobSize(ctx context.Context, repoDir, commit, path string) (int64, error) {
	out, err := Exec(ctx, repoDir, "cat-file", "-s", commit+":"+path)
	if err != nil {
		return 0, err
	}
	size, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing blob size %q: %w", out, err)
	}
	return size, nil
}

// ShowBlob returns the raw bytes of the blob at commit:path, via
// `git show <commit>:<path>`.
func ShowBlob(ctx context.Context, repoDir, commit, path string) ([]byte, error) {
	out, err := Exec(ctx, repoDir, "show", commit+":"+path)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// IsHexSHA returns true if s looks like a full or abbreviated git SHA (hex
// string, >= 7 chars per the engine's source-tag invariant).
func IsHexSHA(s string) bool {
	if len(s) < 7 {
		return false
	}
	for _, r := range []byte(s) {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
