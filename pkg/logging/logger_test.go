// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLevelString(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, c := range cases {
		if got := c.level.String(); got != c.want {
			t.Errorf("Level(%d).String() = %q, want %q", c.level, got, c.want)
		}
	}
}

// readLogLines parses the single {service}_{date}.log file in dir into one
// map per line.
func readLogLines(t *testing.T, dir, service string) []map[string]any {
	t.Helper()

	filename := fmt.Sprintf("%s_%s.log", service, time.Now().Format("2006-01-02"))
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not JSON: %q: %v", line, err)
		}
		lines = append(lines, entry)
	}
	return lines
}

func TestFileLogging(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{
		Level:   LevelInfo,
		LogDir:  dir,
		Service: "cli",
		Quiet:   true,
	})

	logger.Info("translated text", "request_id", "r1", "tokens", 3)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := readLogLines(t, dir, "cli")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(lines))
	}
	entry := lines[0]
	if entry["msg"] != "translated text" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["service"] != "cli" {
		t.Errorf("service = %v, want cli", entry["service"])
	}
	if entry["request_id"] != "r1" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
}

func TestFileLogging_DefaultServiceName(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{LogDir: dir, Quiet: true})

	logger.Info("hello")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Empty Service falls back to the signosi file prefix.
	filename := fmt.Sprintf("signosi_%s.log", time.Now().Format("2006-01-02"))
	if _, err := os.Stat(filepath.Join(dir, filename)); err != nil {
		t.Errorf("expected %s to exist: %v", filename, err)
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{
		Level:   LevelWarn,
		LogDir:  dir,
		Service: "cli",
		Quiet:   true,
	})

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept too")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := readLogLines(t, dir, "cli")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines at Warn level, got %d", len(lines))
	}
	if lines[0]["msg"] != "kept" || lines[1]["msg"] != "kept too" {
		t.Errorf("unexpected messages %v", lines)
	}
}

func TestWith(t *testing.T) {
	dir := t.TempDir()
	logger := New(Config{LogDir: dir, Service: "cli", Quiet: true})

	child := logger.With("request_id", "r7")
	child.Info("child entry")
	logger.Info("parent entry")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := readLogLines(t, dir, "cli")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	if lines[0]["request_id"] != "r7" {
		t.Errorf("child entry missing attribute: %v", lines[0])
	}
	if _, ok := lines[1]["request_id"]; ok {
		t.Errorf("parent entry must not carry the child attribute: %v", lines[1])
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil || logger.Slog() == nil {
		t.Fatal("Default returned an unusable logger")
	}
	if logger.config.Service != "signosi" {
		t.Errorf("Service = %q, want signosi", logger.config.Service)
	}
}

func TestBufferedExporter(t *testing.T) {
	exporter := NewBufferedExporter()
	logger := New(Config{
		Level:    LevelInfo,
		Service:  "cli",
		Quiet:    true,
		Exporter: exporter,
	})

	logger.Info("exported entry", "request_id", "r2")

	// Export runs on its own goroutine; poll for arrival.
	deadline := time.Now().Add(2 * time.Second)
	for len(exporter.Entries()) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	entries := exporter.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 exported entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Message != "exported entry" || e.Level != LevelInfo || e.Service != "cli" {
		t.Errorf("unexpected entry %+v", e)
	}
	if e.Attrs["request_id"] != "r2" {
		t.Errorf("Attrs = %v", e.Attrs)
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestExporter_RespectsLevel(t *testing.T) {
	exporter := NewBufferedExporter()
	logger := New(Config{
		Level:    LevelWarn,
		Quiet:    true,
		Exporter: exporter,
	})

	logger.Info("below threshold")
	time.Sleep(50 * time.Millisecond)

	if got := len(exporter.Entries()); got != 0 {
		t.Errorf("expected no exports below the level, got %d", got)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestNopExporter(t *testing.T) {
	e := &NopExporter{}
	if err := e.Export(context.Background(), LogEntry{}); err != nil {
		t.Errorf("Export: %v", err)
	}
	if err := e.Flush(context.Background()); err != nil {
		t.Errorf("Flush: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestWriterExporter(t *testing.T) {
	var buf bytes.Buffer
	e := NewWriterExporter(&buf)

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     LevelWarn,
		Message:   "disk almost full",
		Attrs:     map[string]any{"free_mb": 12},
	}
	if err := e.Export(context.Background(), entry); err != nil {
		t.Fatalf("Export: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "disk almost full") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	if got := expandPath("~/logs"); got != filepath.Join(home, "logs") {
		t.Errorf("expandPath(~/logs) = %q", got)
	}
	if got := expandPath("/var/log/signosi"); got != "/var/log/signosi" {
		t.Errorf("absolute path must pass through, got %q", got)
	}
	if got := expandPath(""); got != "" {
		t.Errorf("empty path must pass through, got %q", got)
	}
}

func TestArgsToMap(t *testing.T) {
	got := argsToMap([]any{"a", 1, "b", "two", 3, "skipped-key", "dangling"})
	if got["a"] != 1 || got["b"] != "two" {
		t.Errorf("argsToMap = %v", got)
	}
	if _, ok := got["dangling"]; ok {
		t.Error("dangling value must be dropped")
	}
	if len(got) != 2 {
		t.Errorf("expected 2 entries, got %v", got)
	}
}
