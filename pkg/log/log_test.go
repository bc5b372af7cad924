package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

// newTestLogger returns a Logger that writes JSON into buf. It constructs
// the Logger directly (this file is in package log) rather than going
// through Default, so each test gets its own isolated handler/level.
func newTestLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level})
	return &Logger{inner: slog.New(h)}
}

// ---------------------------------------------------------------------------
// Logger.Module
// ---------------------------------------------------------------------------

func TestLogger_Module(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug)
	child := l.Module("merkle")

	child.Info("proof generated")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v (raw: %s)", err, buf.String())
	}

	if entry["module"] != "merkle" {
		t.Fatalf("module = %v, want %q", entry["module"], "merkle")
	}
	if entry["msg"] != "proof generated" {
		t.Fatalf("msg = %v, want %q", entry["msg"], "proof generated")
	}
}

func TestLogger_ModuleChain(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug)
	// Module returns a *Logger, so chaining down through subsystems
	// (runner -> hybrid -> one of its K segments) composes naturally.
	child := l.Module("hybrid").Module("segment-3")

	child.Info("batch applied")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v (raw: %s)", err, buf.String())
	}

	if entry["module"] != "segment-3" {
		t.Fatalf("module = %v, want %q", entry["module"], "segment-3")
	}
}

// ---------------------------------------------------------------------------
// Logger levels
// ---------------------------------------------------------------------------

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		level  slog.Level
		logFn  func(l *Logger)
		expect bool // whether message should appear
	}{
		{slog.LevelInfo, func(l *Logger) { l.Debug("nope") }, false},
		{slog.LevelInfo, func(l *Logger) { l.Info("yes") }, true},
		{slog.LevelInfo, func(l *Logger) { l.Warn("yes") }, true},
		{slog.LevelInfo, func(l *Logger) { l.Error("yes") }, true},
		{slog.LevelWarn, func(l *Logger) { l.Info("nope") }, false},
		{slog.LevelWarn, func(l *Logger) { l.Warn("yes") }, true},
		{slog.LevelDebug, func(l *Logger) { l.Debug("yes") }, true},
	}

	for i, tt := range tests {
		var buf bytes.Buffer
		l := newTestLogger(&buf, tt.level)
		tt.logFn(l)

		got := buf.Len() > 0
		if got != tt.expect {
			t.Errorf("test %d: output=%v, want %v (level=%v, buf=%s)",
				i, got, tt.expect, tt.level, buf.String())
		}
	}
}

// ---------------------------------------------------------------------------
// Structured key-value args
// ---------------------------------------------------------------------------

func TestLogger_KeyValueArgs(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelInfo)

	l.Info("cell complete", "scheme", "rsa_trapdoored", "n", 1000)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if entry["scheme"] != "rsa_trapdoored" {
		t.Fatalf("scheme = %v, want %q", entry["scheme"], "rsa_trapdoored")
	}
	// slog renders numbers as float64 in JSON.
	if v, ok := entry["n"].(float64); !ok || v != 1000 {
		t.Fatalf("n = %v, want 1000", entry["n"])
	}
}

// ---------------------------------------------------------------------------
// Default logger
// ---------------------------------------------------------------------------

func TestDefaultLogger(t *testing.T) {
	// The package initializes a default logger at load time; verify it is
	// non-nil and that every accumulator scheme's Module() call (see
	// pkg/merkle, pkg/rsaacc, pkg/hybrid, pkg/verkle, pkg/bench) works
	// against it without panicking.
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}
	if Default().Module("merkle") == nil {
		t.Fatal("Default().Module(...) returned nil")
	}
}
