package core

import (
	"fmt"
	"testing"

	"showcase/config"
)

func setMaxErrorLogs(t *testing.T, n int) {
	t.Helper()
	orig := config.Settings.MaxErrorLogs
	config.Settings.MaxErrorLogs = n
	t.Cleanup(func() { config.Settings.MaxErrorLogs = orig })
}

func TestErrorLogger_RingEviction(t *testing.T) {
	setMaxErrorLogs(t, 3)
	e := NewErrorLogger()

	for i := 1; i <= 5; i++ {
		e.LogError("ERROR", "test", fmt.Sprintf("message %d", i), "")
	}

	logs := e.GetErrorLogs()
	if len(logs) != 3 {
		t.Fatalf("expected 3 entries after eviction, got %d", len(logs))
	}
	// Latest first
	if logs[0].Message != "message 5" || logs[2].Message != "message 3" {
		t.Fatalf("unexpected window: %q .. %q", logs[0].Message, logs[2].Message)
	}
	if e.GetErrorLogByID(1) != nil || e.GetErrorLogByID(2) != nil {
		t.Fatalf("evicted entries still resolvable by ID")
	}
}

func TestErrorLogger_CapAppliedAfterConstruction(t *testing.T) {
	// Flags are parsed after package init, so the cap has to take effect on
	// rings that already exist.
	e := NewErrorLogger()
	for i := 0; i < 10; i++ {
		e.LogError("ERROR", "test", "before cap change", "")
	}

	setMaxErrorLogs(t, 2)
	e.LogError("ERROR", "test", "after cap change", "")

	logs := e.GetErrorLogs()
	if len(logs) != 2 {
		t.Fatalf("expected ring trimmed to 2 entries, got %d", len(logs))
	}
	if logs[0].Message != "after cap change" {
		t.Fatalf("newest entry = %q", logs[0].Message)
	}
}

func TestErrorLogger_GetByID(t *testing.T) {
	e := NewErrorLogger()
	e.LogError("ERROR", "database", "query failed", "disk I/O error")
	e.LogError("WARN", "settings", "update rejected", "")

	entry := e.GetErrorLogByID(1)
	if entry == nil {
		t.Fatalf("expected entry for ID 1")
	}
	if entry.Source != "database" || entry.Detail != "disk I/O error" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if e.GetErrorLogByID(99) != nil {
		t.Fatalf("expected nil for unknown ID")
	}

	e.ClearErrorLogs()
	if e.GetErrorLogByID(1) != nil {
		t.Fatalf("expected nil after clear")
	}
}
