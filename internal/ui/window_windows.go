//go:build windows

package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/lxn/walk"
	. "github.com/lxn/walk/declarative"

	"hwview/internal/config"
	"hwview/internal/hardware"
)

// Run opens the viewer window and blocks until it is closed. A non-nil error
// means the window itself could not be created; hardware queries never fail
// the shell.
func Run(cfg *config.Config, inv hardware.Inventory, logger *log.Logger) error {
	release, err := ensureSingleInstance()
	if err != nil {
		logger.Printf("second instance refused: %v", err)
		walk.MsgBox(nil, cfg.Window.Title,
			"Hardware Viewer is already running.",
			walk.MsgBoxIconInformation|walk.MsgBoxOK)
		return nil
	}
	defer release()

	osLine := hardware.OSDescription(context.Background())

	var (
		mw          *walk.MainWindow
		cpuValue    *walk.Label
		gpuValue    *walk.Label
		ramValue    *walk.Label
		statusLabel *walk.Label
		current     hardware.Snapshot
	)

	// Synchronous on the UI thread: the three OS calls are local and return
	// in milliseconds, so no progress indicator is needed.
	refresh := func() {
		current = hardware.Collect(context.Background(), inv)
		cpuValue.SetText(current.CPU)
		gpuValue.SetText(current.GPU)
		ramValue.SetText(current.RAM)
		statusLabel.SetText(StatusLine(current.TakenAt))
		logUnavailable(logger, current)
	}

	copySummary := func() {
		text := SummaryText(cfg.Window.Title, osLine, current)
		if err := walk.Clipboard().SetText(text); err != nil {
			logger.Printf("clipboard write failed: %v", err)
			statusLabel.SetText("Copy failed")
			return
		}
		statusLabel.SetText("Copied to clipboard")
	}

	captionFont := Font{Family: "Segoe UI", PointSize: 10, Bold: true}

	window := MainWindow{
		AssignTo: &mw,
		Title:    cfg.Window.Title,
		MinSize:  Size{Width: cfg.Window.Width, Height: cfg.Window.Height},
		Size:     Size{Width: cfg.Window.Width, Height: cfg.Window.Height},
		Layout: VBox{
			Margins: Margins{Left: 14, Top: 14, Right: 14, Bottom: 14},
			Spacing: 8,
		},
		Children: []Widget{
			Label{
				Text: cfg.Window.Title,
				Font: Font{Family: "Segoe UI", PointSize: 14, Bold: true},
			},
			Label{Text: "OS: " + osLine},
			HSeparator{},
			Composite{
				Layout: Grid{Columns: 2, MarginsZero: true, Spacing: 6},
				Children: []Widget{
					Label{Text: FieldLabels[0], Font: captionFont},
					Label{AssignTo: &cpuValue},
					Label{Text: FieldLabels[1], Font: captionFont},
					Label{AssignTo: &gpuValue},
					Label{Text: FieldLabels[2], Font: captionFont},
					Label{AssignTo: &ramValue},
				},
			},
			VSpacer{},
			Composite{
				Layout: HBox{MarginsZero: true, Spacing: 6},
				Children: []Widget{
					PushButton{Text: "Refresh", OnClicked: refresh},
					PushButton{Text: "Copy Summary", OnClicked: copySummary},
					HSpacer{},
					Label{AssignTo: &statusLabel},
				},
			},
		},
	}

	if err := window.Create(); err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	if !cfg.Window.ManualRefreshOnly {
		refresh()
	}

	mw.Run()
	return nil
}

func logUnavailable(logger *log.Logger, snap hardware.Snapshot) {
	if snap.CPU == hardware.Unavailable {
		logger.Println("cpu query unavailable")
	}
	if snap.GPU == hardware.Unavailable {
		logger.Println("gpu query unavailable")
	}
	if snap.RAM == hardware.Unavailable {
		logger.Println("ram query unavailable")
	}
}
