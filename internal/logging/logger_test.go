package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("New accepted unknown format")
	}
}

func TestNewDefaultsToConsole(t *testing.T) {
	logger, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger == nil {
		t.Fatal("New returned nil logger")
	}
}

func TestNewWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "subber.log")

	logger, err := New(Options{Level: "debug", Format: "json", LogFile: logFile})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello", String("component", "test"))

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message: %q", string(data))
	}
	if !strings.Contains(string(data), "component") {
		t.Errorf("log file missing attr: %q", string(data))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"", "INFO"},
		{"bogus", "INFO"},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in).String(); got != tt.want {
			t.Errorf("parseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.Error("dropped", Error(nil))
}
