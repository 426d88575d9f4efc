// Package globalconfig provides global configuration management for
// scriptshelf. Configuration is stored at ~/.config/scriptshelf/config.yaml
// and includes the scripts directory, tools directory and media settings.
package globalconfig

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// ConfigDirName is the name of the config directory under ~/.config.
	ConfigDirName = "scriptshelf"
	// ConfigFileName is the name of the main config file.
	ConfigFileName = "config.yaml"
)

// GetConfigDir returns the config directory path (~/.config/scriptshelf).
// Respects XDG_CONFIG_HOME if set.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDirName), nil
}

// GetConfigPath returns the full path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(configDir, 0755)
}

// DefaultToolsDir returns the default installation target for packaged
// executables: C:\tools on Windows, ~/.local/bin elsewhere.
func DefaultToolsDir() string {
	if runtime.GOOS == "windows" {
		return `C:\tools`
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tools"
	}
	return filepath.Join(home, ".local", "bin")
}
