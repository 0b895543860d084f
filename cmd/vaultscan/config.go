// Copyright 2026 The Vaultscan Authors
// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

// The helpers below implement the documented config precedence chain — CLI
// flag > .vaultscan.yaml > global config > built-in default — per field,
// independently. A CLI flag only counts as "set" when cobra reports it as
// explicitly changed, so an unset flag falls through to the file layers
// instead of silently overriding them with its zero value.

func flagInt64(cmd *cobra.Command, name string, val int64) *int64 {
	if cmd.Flags().Changed(name) {
		return &val
	}
	return nil
}

func flagInt(cmd *cobra.Command, name string, val int) *int {
	if cmd.Flags().Changed(name) {
		return &val
	}
	return nil
}

func flagFloat64(cmd *cobra.Command, name string, val float64) *float64 {
	if cmd.Flags().Changed(name) {
		return &val
	}
	return nil
}

func flagString(cmd *cobra.Command, name string, val string) *string {
	if cmd.Flags().Changed(name) {
		return &val
	}
	return nil
}

func flagBoolIfChanged(cmd *cobra.Command, name string, val bool) *bool {
	if cmd.Flags().Changed(name) {
		return &val
	}
	return nil
}

func firstNonZeroInt64(flagVal *int64, rest ...int64) int64 {
	if flagVal != nil {
		return *flagVal
	}
	for _, v := range rest {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonZeroInt(flagVal *int, rest ...int) int {
	if flagVal != nil {
		return *flagVal
	}
	for _, v := range rest {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonZeroFloat(flagVal *float64, rest ...float64) float64 {
	if flagVal != nil {
		return *flagVal
	}
	for _, v := range rest {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonEmptyString(flagVal *string, rest ...string) string {
	if flagVal != nil {
		return *flagVal
	}
	for _, v := range rest {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonNilBool(flagVal, fileVal, globalVal *bool, def bool) bool {
	if flagVal != nil {
		return *flagVal
	}
	if fileVal != nil {
		return *fileVal
	}
	if globalVal != nil {
		return *globalVal
	}
	return def
}
