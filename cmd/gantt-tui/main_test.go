package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hy4ri/gantt-tui/internal/config"
	"github.com/hy4ri/gantt-tui/internal/gantt"
	"gopkg.in/yaml.v3"
)

func TestConfigTemplateIsValid(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := yaml.Unmarshal([]byte(configTemplate), cfg); err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("template is not a valid config: %v", err)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  default_view: weeks\n  locale: en\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := loadConfig(options{configPath: path})
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.ViewMode() != gantt.Weeks {
		t.Errorf("expected weeks from the file, got %v", cfg.ViewMode())
	}

	cfg, err = loadConfig(options{
		configPath: path,
		file:       "tasks.yaml",
		mode:       "months",
		locale:     "es",
		debug:      true,
	})
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Source.Type != config.SourceFile || cfg.Source.File != "tasks.yaml" {
		t.Errorf("unexpected source %+v", cfg.Source)
	}
	if cfg.ViewMode() != gantt.Months {
		t.Errorf("expected months, got %v", cfg.ViewMode())
	}
	if cfg.Locale().Week != "Semana" {
		t.Errorf("expected Spanish labels, got %q", cfg.Locale().Week)
	}
	if !cfg.Log.Enabled || !cfg.Log.Debug {
		t.Error("--debug should enable debug logging")
	}

	if _, err := loadConfig(options{configPath: path, mode: "years"}); err == nil {
		t.Error("expected error for an unknown view")
	}
}
