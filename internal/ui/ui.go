// Package ui renders hardware snapshots in a native window on Windows.
package ui

import (
	"strings"
	"time"

	"hwview/internal/hardware"
)

// FieldLabels are the captions next to the snapshot values, in display order.
var FieldLabels = [3]string{"CPU:", "GPU:", "RAM:"}

// SummaryText builds the plain-text block placed on the clipboard by the
// Copy Summary button.
func SummaryText(title, osLine string, snap hardware.Snapshot) string {
	lines := []string{
		title,
		"OS: " + osLine,
		"",
		"CPU: " + snap.CPU,
		"GPU: " + snap.GPU,
		"RAM: " + snap.RAM,
	}
	return strings.Join(lines, "\n")
}

// StatusLine reports when the visible snapshot was taken.
func StatusLine(takenAt time.Time) string {
	return "Refreshed " + takenAt.Format("15:04:05")
}
