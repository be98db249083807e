package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// ManualRefreshOnly skips the automatic query on startup; the window
	// opens blank until the Refresh button is clicked.
	ManualRefreshOnly bool `yaml:"manual_refresh_only"`
}

type LoggingConfig struct {
	// File is the log destination; empty means hwview.log next to the executable.
	File string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:             "Hardware Viewer",
			Width:             520,
			Height:            320,
			ManualRefreshOnly: false,
		},
		Logging: LoggingConfig{File: ""},
	}
}

// EnsureExists creates a default config file when it does not exist.
// It never overwrites an existing config.
func EnsureExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Window.Title) == "" {
		return errors.New("window.title is required")
	}
	if c.Window.Width <= 0 {
		return errors.New("window.width must be > 0")
	}
	if c.Window.Height <= 0 {
		return errors.New("window.height must be > 0")
	}
	return nil
}

// ApplyDefaults fills fields the file left unset. Negative dimensions are
// left alone for Validate to reject.
func (c *Config) ApplyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = "Hardware Viewer"
	}
	if c.Window.Width == 0 {
		c.Window.Width = 520
	}
	if c.Window.Height == 0 {
		c.Window.Height = 320
	}
}
