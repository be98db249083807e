package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerWritesWithPrefix(t *testing.T) {
	p := filepath.Join(t.TempDir(), "hwview.log")

	logger, f, err := NewLogger(p)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Println("window opened")
	if err := f.Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(b)
	if !strings.Contains(got, "hwview ") || !strings.Contains(got, "window opened") {
		t.Fatalf("log content %q missing prefix or message", got)
	}
}

func TestNewLoggerAppends(t *testing.T) {
	p := filepath.Join(t.TempDir(), "hwview.log")

	for _, msg := range []string{"first", "second"} {
		logger, f, err := NewLogger(p)
		if err != nil {
			t.Fatalf("NewLogger: %v", err)
		}
		logger.Println(msg)
		_ = f.Close()
	}

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := string(b); !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Fatalf("log content %q should hold both runs", got)
	}
}

func TestDefaultLogPathEndsWithName(t *testing.T) {
	got := DefaultLogPath("hwview.log")
	if got == "" || filepath.Base(got) != "hwview.log" {
		t.Fatalf("DefaultLogPath=%q", got)
	}
}
