package ui

import (
	"strings"
	"testing"
	"time"

	"hwview/internal/hardware"
)

func TestSummaryText(t *testing.T) {
	snap := hardware.Snapshot{
		CPU: "Intel(R) Core(TM) i7-9750H",
		GPU: "NVIDIA GeForce GTX 1650",
		RAM: "16.0 GB",
	}

	got := SummaryText("Hardware Viewer", "linux 6.1 (amd64)", snap)
	want := "Hardware Viewer\n" +
		"OS: linux 6.1 (amd64)\n" +
		"\n" +
		"CPU: Intel(R) Core(TM) i7-9750H\n" +
		"GPU: NVIDIA GeForce GTX 1650\n" +
		"RAM: 16.0 GB"
	if got != want {
		t.Fatalf("summary=%q want=%q", got, want)
	}
}

func TestSummaryTextCarriesSentinels(t *testing.T) {
	snap := hardware.Snapshot{
		CPU: "Intel(R) Core(TM) i7-9750H",
		GPU: hardware.Unavailable,
		RAM: "16.0 GB",
	}

	got := SummaryText("Hardware Viewer", "windows 10 (amd64)", snap)
	if want := "GPU: " + hardware.Unavailable; !strings.Contains(got, want) {
		t.Fatalf("summary %q missing %q", got, want)
	}
}

func TestStatusLine(t *testing.T) {
	at := time.Date(2024, 5, 1, 15, 4, 5, 0, time.UTC)
	if got := StatusLine(at); got != "Refreshed 15:04:05" {
		t.Fatalf("status=%q", got)
	}
}
