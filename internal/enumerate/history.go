// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package enumerate

import (
	"context"
	"strings"

	"github.com/wardenclyffe/vaultscan/internal/gitcli"
)

// HistoryItem is one (commit, path) pair the history enumerator yields.
type HistoryItem struct {
	Commit  string
	RelPath string
}

// History lists every reachable commit (capped by commitLimit when
// positive) and, for each, every tracked path surviving the same skip
// rules as the working-tree enumerator. It eagerly enumerates all pairs;
// blob content itself is fetched lazily by the caller.
func History(ctx context.Context, repoPath string, commitLimit int) ([]HistoryItem, error) {
	commits, err := gitcli.RevList(ctx, repoPath, commitLimit)
	if err != nil {
		return nil, err
	}

	var items []HistoryItem
	for _, commit := range commits {
		paths, err := gitcli.LsTree(ctx, repoPath, commit)
		if err != nil {
			continue
		}
		for _, path := range paths {
			if pathHasSkippedComponent(path) {
				continue
			}
			if shouldSkipFile(path) {
				continue
			}
			items = append(items, HistoryItem{Commit: commit, RelPath: path})
		}
	}
	return items, nil
}

func pathHasSkippedComponent(path string) bool {
	for _, component := range strings.Split(path, "/") {
		if shouldSkipDir(component) {
			return true
		}
	}
	return false
}

// ReadBlob lazily fetches a historical blob's text content: a size probe
// first, skipping without reading bytes if the blob exceeds maxSize, then
// the blob bytes themselves. Any failure (size probe, read) yields ok=false
// for the caller to silently skip.
func ReadBlob(ctx context.Context, repoPath, commit, relPath string, maxSize int64) (data []byte, ok bool) {
	size, err := gitcli.BlobSize(ctx, repoPath, commit, relPath)
	if err != nil || size > maxSize {
		return nil, false
	}
	blob, err := gitcli.ShowBlob(ctx, repoPath, commit, relPath)
	if err != nil {
		return nil, false
	}
	return blob, true
}
