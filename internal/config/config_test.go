package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestConfig(t *testing.T, dir string, content string) string {
	t.Helper()
	p := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadAppliesDefaults(t *testing.T) {
	p := writeTestConfig(t, t.TempDir(),
		"window:\n"+
			"  title: \"My Viewer\"\n")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Window.Title != "My Viewer" {
		t.Fatalf("title=%q", cfg.Window.Title)
	}
	if cfg.Window.Width != 520 || cfg.Window.Height != 320 {
		t.Fatalf("dimensions=%dx%d want defaults", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.ManualRefreshOnly {
		t.Fatal("manual_refresh_only should default to false")
	}
}

func TestLoadRejectsNegativeDimensions(t *testing.T) {
	p := writeTestConfig(t, t.TempDir(),
		"window:\n"+
			"  title: \"My Viewer\"\n"+
			"  width: -1\n")

	if _, err := Load(p); err == nil {
		t.Fatal("expected validation error for negative width")
	}
}

func TestLoadRejectsBlankTitle(t *testing.T) {
	p := writeTestConfig(t, t.TempDir(),
		"window:\n"+
			"  title: \"   \"\n")

	if _, err := Load(p); err == nil {
		t.Fatal("expected validation error for blank title")
	}
}

func TestEnsureExistsDoesNotOverwrite(t *testing.T) {
	p := writeTestConfig(t, t.TempDir(),
		"window:\n"+
			"  title: \"Keep Me\"\n")

	if err := EnsureExists(p); err != nil {
		t.Fatalf("EnsureExists: %v", err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Window.Title != "Keep Me" {
		t.Fatalf("title=%q, existing config was overwritten", cfg.Window.Title)
	}
}

func TestEnsureExistsWritesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")

	if err := EnsureExists(p); err != nil {
		t.Fatalf("EnsureExists: %v", err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Window.Title != "Hardware Viewer" {
		t.Fatalf("title=%q want default", cfg.Window.Title)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	want := Default()
	want.Window.Title = "Round Trip"
	want.Window.ManualRefreshOnly = true

	if err := Save(p, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Window.Title != "Round Trip" || !got.Window.ManualRefreshOnly {
		t.Fatalf("round trip mismatch: %+v", got.Window)
	}
}
