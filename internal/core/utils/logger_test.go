package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	wlogger "github.com/wailsapp/wails/v2/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "info", "json")

	logger.WithOperation("resize").WithEvent("window-resize-dec").Info("bounds changed", "width", 720)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["operation"] != "resize" {
		t.Errorf("Expected operation=resize, got %v", entry["operation"])
	}
	if entry["event"] != "window-resize-dec" {
		t.Errorf("Expected event=window-resize-dec, got %v", entry["event"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "warn", "text")

	logger.Info("hidden")
	logger.WithError(errors.New("boom")).Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Info should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "boom") {
		t.Errorf("Expected warn line with error attribute, got %q", out)
	}
}

func TestWailsLogger(t *testing.T) {
	var buf bytes.Buffer
	wl := NewWailsLogger(NewLoggerWithWriter(&buf, "debug", "text"))

	wl.Debug("asset served")
	wl.Warning("slow frame")
	wl.Error("webview crashed")

	out := buf.String()
	for _, want := range []string{"asset served", "slow frame", "webview crashed", "operation=runtime"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got %q", want, out)
		}
	}
}

func TestWailsLogLevel(t *testing.T) {
	if WailsLogLevel("debug") != wlogger.DEBUG {
		t.Error("debug should map to DEBUG")
	}
	if WailsLogLevel("error") != wlogger.ERROR {
		t.Error("error should map to ERROR")
	}
	if WailsLogLevel("") != wlogger.INFO {
		t.Error("empty should map to INFO")
	}
}
