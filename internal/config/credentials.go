package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = appName
	keyringUser    = "todoist-token"
	credFileName   = ".credentials"
	logFileName    = appName + ".log"
)

// tokenEnvVars are checked in order before any stored token.
var tokenEnvVars = []string{"GANTT_TODOIST_TOKEN", "TODOIST_TOKEN"}

// DataDir returns the path to the data directory for secure storage and logs.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/gantt-tui/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, appName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// LogPath returns the configured log file, or the default one in DataDir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// GetToken retrieves the Todoist API token.
// Priority: 1. environment, 2. config file, 3. system keyring, 4. credentials file
func (c *Config) GetToken() (string, error) {
	for _, name := range tokenEnvVars {
		if token := strings.TrimSpace(os.Getenv(name)); token != "" {
			return token, nil
		}
	}

	if token := strings.TrimSpace(c.Source.APIToken); token != "" {
		return token, nil
	}

	token, err := keyring.Get(keyringService, keyringUser)
	if err == nil && token != "" {
		return strings.TrimSpace(token), nil
	}

	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(dataDir, credFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil // No token stored
		}
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// SaveToken stores the API token securely.
// Tries system keyring first, falls back to credentials file.
func SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := keyring.Set(keyringService, keyringUser, token); err == nil {
		return nil
	}

	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	credPath := filepath.Join(dataDir, credFileName)
	if err := os.WriteFile(credPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	return nil
}

// ClearToken removes the stored API token from all locations.
func ClearToken() error {
	// Try to delete from keyring (ignore errors)
	_ = keyring.Delete(keyringService, keyringUser)

	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	credPath := filepath.Join(dataDir, credFileName)
	if err := os.Remove(credPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}

	return nil
}
