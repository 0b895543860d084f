// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

// Package engine orchestrates a full repository scan: it loads the rule
// store, runs the bounded working-tree and history worker pools, and hands
// the combined findings to the pipeline package for dedup and enrichment.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wardenclyffe/vaultscan/internal/content"
	"github.com/wardenclyffe/vaultscan/internal/enumerate"
	"github.com/wardenclyffe/vaultscan/internal/match"
	"github.com/wardenclyffe/vaultscan/internal/metadata"
	"github.com/wardenclyffe/vaultscan/internal/pipeline"
	"github.com/wardenclyffe/vaultscan/internal/rulestore"
	"github.com/wardenclyffe/vaultscan/internal/scanmodel"
)

// ConfigError is a fatal configuration failure: a missing repo path, or a
// rule file that is unreadable or malformed beyond recovery. It short-
// circuits ScanRepository; every other failure mode is swallowed and
// surfaces only as a missing finding or a debug log line.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

func workdirPoolSize() int {
	n := runtime.NumCPU() + 4
	if n > 32 {
		return 32
	}
	return n
}

func historyPoolSize() int {
	n := runtime.NumCPU() + 4
	if n > 16 {
		return 16
	}
	return n
}

// ScanRepository runs a full scan of cfg.RepoPath and returns the
// deduplicated, enriched result. It returns a *ConfigError only for fatal
// configuration failures; every other error condition is absorbed and the
// scan returns whatever partial results it gathered.
func ScanRepository(ctx context.Context, cfg scanmodel.ScanConfig) (scanmodel.ScanResult, error) {
	cfg = cfg.Normalize()

	if cfg.RepoPath == "" {
		return scanmodel.ScanResult{}, &ConfigError{Msg: "repo_path is required"}
	}
	if info, err := os.Stat(cfg.RepoPath); err != nil || !info.IsDir() {
		return scanmodel.ScanResult{}, &ConfigError{Msg: "repo path does not exist", Err: err}
	}

	rules, err := rulestore.Load(cfg.RepoPath, cfg.RulesConfigPath)
	if err != nil {
		return scanmodel.ScanResult{}, &ConfigError{Msg: "loading rule store", Err: err}
	}

	findings, err := scanWorkdir(ctx, cfg, rules)
	if err != nil {
		return scanmodel.ScanResult{}, err
	}

	if cfg.ScanHistory {
		historyFindings, err := scanHistory(ctx, cfg, rules)
		if err != nil {
			return scanmodel.ScanResult{}, err
		}
		findings = append(findings, historyFindings...)
	}

	findings = pipeline.Dedup(findings)
	pipeline.Enrich(findings)

	return scanmodel.ScanResult{
		RepoPath: cfg.RepoPath,
		Findings: findings,
	}, nil
}

func scanWorkdir(ctx context.Context, cfg scanmodel.ScanConfig, rules []scanmodel.Rule) ([]scanmodel.Finding, error) {
	items, err := enumerate.Workdir(cfg.RepoPath)
	if err != nil {
		return nil, &ConfigError{Msg: "enumerating working tree", Err: err}
	}

	return runPool(ctx, workdirPoolSize(), len(items), func(i int) []scanmodel.Finding {
		item := items[i]

		if item.MetaOK {
			return metadata.Extract(item.AbsPath, item.RelPath, cfg.MaxFileSize)
		}

		data, err := os.ReadFile(item.AbsPath)
		if err != nil {
			slog.Debug("skipping unreadable workdir file", "path", item.RelPath, "error", err)
			return nil
		}
		return matchBlob(cfg, rules, "workdir", item.RelPath, data)
	}), nil
}

func scanHistory(ctx context.Context, cfg scanmodel.ScanConfig, rules []scanmodel.Rule) ([]scanmodel.Finding, error) {
	items, err := enumerate.History(ctx, cfg.RepoPath, cfg.HistoryCommitLimit)
	if err != nil {
		slog.Debug("skipping history scan", "error", err)
		return nil, nil
	}

	return runPool(ctx, historyPoolSize(), len(items), func(i int) []scanmodel.Finding {
		item := items[i]

		data, ok := enumerate.ReadBlob(ctx, cfg.RepoPath, item.Commit, item.RelPath, cfg.MaxFileSize)
		if !ok {
			return nil
		}
		return matchBlob(cfg, rules, item.Commit, item.RelPath, data)
	}), nil
}

func matchBlob(cfg scanmodel.ScanConfig, rules []scanmodel.Rule, source, relPath string, data []byte) []scanmodel.Finding {
	text, ok := content.AsText(data, cfg.MaxFileSize)
	if !ok {
		return nil
	}

	var findings []scanmodel.Finding
	if cfg.IncludePatterns {
		findings = append(findings, match.Patterns(rules, source, relPath, text)...)
	}
	if cfg.IncludeEntropy {
		findings = append(findings, match.Entropy(text, source, relPath, cfg.EntropyThreshold)...)
	}
	return findings
}

// runPool runs task(i) for i in [0, n) across a bounded pool of size
// workers, recovering and logging any panic without aborting siblings, and
// returns the concatenation of every task's findings.
func runPool(ctx context.Context, workers, n int, task func(i int) []scanmodel.Finding) []scanmodel.Finding {
	if n == 0 {
		return nil
	}

	sem := make(chan struct{}, workers)
	g, _ := errgroup.WithContext(ctx)
	results := make([][]scanmodel.Finding, n)

	for i := 0; i < n; i++ {
		i := i
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			results[i] = runTask(i, task)
			return nil
		})
	}
	_ = g.Wait()

	var out []scanmodel.Finding
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

func runTask(i int, task func(i int) []scanmodel.Finding) (findings []scanmodel.Finding) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("recovered from panic in scan task", "index", i, "panic", r)
			findings = nil
		}
	}()
	return task(i)
}
