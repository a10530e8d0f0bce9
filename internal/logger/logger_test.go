package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screener.log")

	log, err := New(Options{JSON: true, File: path})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Debug("hidden")
	log.Info("session started")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one entry at info level, got %d: %s", len(lines), data)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry["step"] != "session started" || entry["level"] != "info" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNewDebugLevel(t *testing.T) {
	log, err := New(Options{Debug: true, File: filepath.Join(t.TempDir(), "debug.log")})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := config(Options{File: "  "})
	if cfg.Encoding != "console" || cfg.Level.Level() != zapcore.InfoLevel {
		t.Fatalf("unexpected defaults: %s at %s", cfg.Encoding, cfg.Level.Level())
	}
	if len(cfg.OutputPaths) != 1 || cfg.OutputPaths[0] != "stderr" {
		t.Fatalf("expected stderr output, got %v", cfg.OutputPaths)
	}
}
