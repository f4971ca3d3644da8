// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hy4ri/gantt-tui/internal/gantt"
	"gopkg.in/yaml.v3"
)

const appName = "gantt-tui"

// Source types.
const (
	SourceFile    = "file"
	SourceTodoist = "todoist"
)

// Config represents the application configuration.
type Config struct {
	Source SourceConfig `yaml:"source"`
	UI     UIConfig     `yaml:"ui"`
	Notify NotifyConfig `yaml:"notify"`
	Log    LogConfig    `yaml:"log"`
}

// SourceConfig selects where tasks are loaded from.
type SourceConfig struct {
	Type string `yaml:"type"` // "file" or "todoist"

	// File is a YAML or JSON task file, used when Type is "file".
	File string `yaml:"file,omitempty"`

	// Todoist settings. APIToken is optional here; see GetToken.
	APIToken  string `yaml:"api_token,omitempty"`
	Filter    string `yaml:"filter,omitempty"`
	ProjectID string `yaml:"project_id,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	DefaultView string `yaml:"default_view"` // "days", "weeks" or "months"
	Locale      string `yaml:"locale"`       // BCP 47 tag for labels, e.g. "es-ES"
	UnitWidth   int    `yaml:"unit_width"`   // Terminal cells per time unit
	NameWidth   int    `yaml:"name_width"`   // Cells for the task name column
	ShowHints   bool   `yaml:"show_hints"`
}

// NotifyConfig controls desktop notifications.
type NotifyConfig struct {
	TasksStartingToday bool `yaml:"tasks_starting_today"`
}

// LogConfig controls the log file. The TUI owns the terminal, so logs never
// go to stdout.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Debug   bool   `yaml:"debug"`
	File    string `yaml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Type: SourceFile,
		},
		UI: UIConfig{
			DefaultView: "days",
			Locale:      "en",
			UnitWidth:   6,
			NameWidth:   24,
			ShowHints:   true,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path over the defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to path.
func SaveTo(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values that would otherwise fail later at render time.
func (c *Config) Validate() error {
	var errs []error

	if _, err := gantt.ParseViewMode(c.UI.DefaultView); err != nil {
		errs = append(errs, fmt.Errorf("ui.default_view: %w", err))
	}
	if c.UI.UnitWidth < 3 {
		errs = append(errs, fmt.Errorf("ui.unit_width must be at least 3, got %d", c.UI.UnitWidth))
	}
	if c.UI.NameWidth < 4 {
		errs = append(errs, fmt.Errorf("ui.name_width must be at least 4, got %d", c.UI.NameWidth))
	}

	switch c.Source.Type {
	case SourceFile, SourceTodoist:
	default:
		errs = append(errs, fmt.Errorf("source.type must be %q or %q, got %q", SourceFile, SourceTodoist, c.Source.Type))
	}

	return errors.Join(errs...)
}

// ViewMode returns the configured default view mode.
func (c *Config) ViewMode() gantt.ViewMode {
	mode, err := gantt.ParseViewMode(c.UI.DefaultView)
	if err != nil {
		return gantt.Days
	}
	return mode
}

// Locale returns the label locale for the configured tag.
func (c *Config) Locale() gantt.Locale {
	return gantt.LookupLocale(c.UI.Locale)
}
