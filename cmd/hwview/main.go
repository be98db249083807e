package main

import (
	"fmt"
	"os"

	"hwview/internal/config"
	"hwview/internal/hardware"
	"hwview/internal/ui"
	"hwview/pkg/utils"
)

func main() {
	cfgPath := os.Getenv("HWVIEW_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	if err := config.EnsureExists(cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to prepare config: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := utils.NewLogger(logPathOrFallback(cfg.Logging.File))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger.Println("viewer starting")
	if err := ui.Run(cfg, hardware.NewInventory(), logger); err != nil {
		logger.Printf("viewer failed: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Println("viewer closed")
}

func logPathOrFallback(path string) string {
	if path == "" {
		return utils.DefaultLogPath("hwview.log")
	}
	return path
}
