package utils

import (
	"log"
	"os"
	"path/filepath"
)

func NewLogger(filePath string) (*log.Logger, *os.File, error) {
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, "hwview ", log.LstdFlags|log.LUTC), f, nil
}

// DefaultLogPath places the named log file next to the running executable,
// falling back to the working directory when the executable path is unknown.
func DefaultLogPath(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}
