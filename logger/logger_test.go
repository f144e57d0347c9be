package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
)

func TestBuildWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := build(Config{Level: WarnLevel, Console: &buf})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	l.Info("dropped")
	l.Warn("kept", Pid(42))
	_ = l.Sync()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %s", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if entry["msg"] != "kept" || entry["level"] != "warn" || entry["pid"] != float64(42) {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestBuildCreatesLogDir(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "nested", "ambient.log")
	l, err := build(Config{Level: DebugLevel, Console: &buf, OutputPath: path, MaxSize: 1})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	l.Debug("hello")
	_ = l.Sync()
}

func TestHelpersWithoutInit(t *testing.T) {
	// package-level helpers are no-ops until InitLogger runs
	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
	Sync()
}
