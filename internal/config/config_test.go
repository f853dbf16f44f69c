package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/obadasoukiah/LibrarySystem-OOP-Project/internal/config"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("LIBRARYCTL_CONFIG", filepath.Join(t.TempDir(), "nope.yml"))

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.TimeFormat != config.DefaultTimeFormat {
		t.Errorf("TimeFormat = %q, want default %q", cfg.Display.TimeFormat, config.DefaultTimeFormat)
	}
	if cfg.Display.Currency != "$" {
		t.Errorf("Currency = %q, want %q", cfg.Display.Currency, "$")
	}
	if !cfg.Demo.Seed {
		t.Error("Demo.Seed default should be true")
	}
}

func TestSave_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	t.Setenv("LIBRARYCTL_CONFIG", path)

	want := &config.Config{
		Display: config.DisplayConfig{
			TimeFormat: "15:04:05",
			Currency:   "€",
			NoColor:    true,
		},
		Demo: config.DemoConfig{Seed: false},
	}
	if err := config.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Save did not write %s: %v", path, err)
	}

	got, err := config.Load()
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if got.Display.TimeFormat != want.Display.TimeFormat {
		t.Errorf("TimeFormat = %q, want %q", got.Display.TimeFormat, want.Display.TimeFormat)
	}
	if got.Display.Currency != want.Display.Currency {
		t.Errorf("Currency = %q, want %q", got.Display.Currency, want.Display.Currency)
	}
	if !got.Display.NoColor {
		t.Error("NoColor not round-tripped")
	}
	if got.Demo.Seed {
		t.Error("Demo.Seed not round-tripped")
	}
}

func TestPath_HonorsEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yml")
	t.Setenv("LIBRARYCTL_CONFIG", path)
	if got := config.Path(); got != path {
		t.Errorf("Path = %q, want %q", got, path)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("display:\n  time_format: \"15:04\"\n  currency: \"€\"\n  no_color: true\ndemo:\n  seed: false\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("LIBRARYCTL_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Display.TimeFormat != "15:04" {
		t.Errorf("TimeFormat = %q, want %q", cfg.Display.TimeFormat, "15:04")
	}
	if cfg.Display.Currency != "€" {
		t.Errorf("Currency = %q, want %q", cfg.Display.Currency, "€")
	}
	if !cfg.Display.NoColor {
		t.Error("NoColor not read from file")
	}
	if cfg.Demo.Seed {
		t.Error("Demo.Seed not read from file")
	}
}
