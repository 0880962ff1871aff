package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/cseelye/simpleisy/internal/infrastructure/config"
)

func TestBuild_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := build(config.LoggingConfig{Level: "info", Format: "text"}, "1.0.0", &buf)

	logger.Info("node discovery complete", "count", 3)

	out := buf.String()
	if !strings.Contains(out, "node discovery complete") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "count=3") {
		t.Errorf("output missing attribute: %q", out)
	}
	if !strings.Contains(out, "service=simpleisy") {
		t.Errorf("output missing service field: %q", out)
	}
}

func TestBuild_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := build(config.LoggingConfig{Level: "info", Format: "json"}, "1.0.0", &buf)

	logger.Info("command acknowledged", "path", "nodes/1A%202B%203C/cmd/DON")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "command acknowledged" {
		t.Errorf("msg = %v, want %q", entry["msg"], "command acknowledged")
	}
	if entry["path"] != "nodes/1A%202B%203C/cmd/DON" {
		t.Errorf("path = %v, want command path", entry["path"])
	}
	if entry["service"] != "simpleisy" {
		t.Errorf("service = %v, want %q", entry["service"], "simpleisy")
	}
	if entry["version"] != "1.0.0" {
		t.Errorf("version = %v, want %q", entry["version"], "1.0.0")
	}
}

func TestBuild_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := build(config.LoggingConfig{Level: "warn", Format: "text"}, "1.0.0", &buf)

	logger.Debug("request sent", "path", "programs?subfolders=true")
	logger.Info("program discovery complete", "count", 2)
	if buf.Len() != 0 {
		t.Errorf("entries below warn were emitted: %q", buf.String())
	}

	logger.Warn("hub responded slowly", "path", "nodes")
	if !strings.Contains(buf.String(), "hub responded slowly") {
		t.Errorf("warn entry missing: %q", buf.String())
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	logger := build(config.LoggingConfig{Level: "debug", Format: "text"}, "1.0.0", &buf)

	tlog := logger.With("component", "transport")
	if tlog == logger {
		t.Fatal("With() should return a new logger")
	}
	tlog.Debug("request sent", "path", "nodes")

	out := buf.String()
	if !strings.Contains(out, "component=transport") {
		t.Errorf("output missing component tag: %q", out)
	}

	// The parent stays untagged.
	buf.Reset()
	logger.Debug("request sent", "path", "nodes")
	if strings.Contains(buf.String(), "component=transport") {
		t.Errorf("parent logger inherited child tag: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logger := New(config.LoggingConfig{Level: "info", Format: "text", Output: "stderr"}, "1.0.0")
	if logger == nil {
		t.Fatal("New() returned nil")
	}
}

func TestDefault(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}
}
