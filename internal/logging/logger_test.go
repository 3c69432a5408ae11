package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewConsoleAndJSON(t *testing.T) {
	for _, format := range []string{"console", "json", ""} {
		logger, err := New(Options{Format: format, Level: "debug"})
		if err != nil {
			t.Fatalf("New(%q): %v", format, err)
		}
		if logger == nil {
			t.Fatalf("New(%q) returned nil logger", format)
		}
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Info("dropped")
	logger = NewComponentLogger(nil, "test")
	logger.Warn("also dropped")
}
