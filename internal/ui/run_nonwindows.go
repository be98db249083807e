//go:build !windows

package ui

import (
	"fmt"
	"log"

	"hwview/internal/config"
	"hwview/internal/hardware"
)

func Run(cfg *config.Config, inv hardware.Inventory, logger *log.Logger) error {
	return fmt.Errorf("the viewer window is only supported on windows; use hwview-cli instead")
}
