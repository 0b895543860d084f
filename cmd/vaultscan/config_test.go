package main

import "testing"

func TestFirstNonZeroInt64(t *testing.T) {
	flag := int64(5)
	if got := firstNonZeroInt64(&flag, 10, 20); got != 5 {
		t.Errorf("flag should win, got %d", got)
	}
	if got := firstNonZeroInt64(nil, 0, 20); got != 20 {
		t.Errorf("expected fallthrough to second layer, got %d", got)
	}
	if got := firstNonZeroInt64(nil, 0, 0); got != 0 {
		t.Errorf("expected zero default, got %d", got)
	}
}

func TestFirstNonEmptyString(t *testing.T) {
	if got := firstNonEmptyString(nil, "", "global.json"); got != "global.json" {
		t.Errorf("expected fallthrough, got %q", got)
	}
	flag := "flag.json"
	if got := firstNonEmptyString(&flag, "file.json", "global.json"); got != "flag.json" {
		t.Errorf("flag should win, got %q", got)
	}
}

func TestFirstNonNilBool(t *testing.T) {
	if got := firstNonNilBool(nil, nil, nil, true); got != true {
		t.Error("expected built-in default true")
	}
	fileVal := false
	if got := firstNonNilBool(nil, &fileVal, nil, true); got != false {
		t.Error("expected file value to override default")
	}
	flagVal := true
	if got := firstNonNilBool(&flagVal, &fileVal, nil, false); got != true {
		t.Error("expected flag value to win over file and default")
	}
}
