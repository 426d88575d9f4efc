package globalconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Version is the current config schema version.
const Version = "1.0"

var (
	// ErrNotInitialized is returned when config doesn't exist or has no scripts path.
	ErrNotInitialized = errors.New("scriptshelf not initialized: run 'scriptshelf init <scripts-dir> <tools-dir>' first")
	// ErrScriptsDirNotFound is returned when the configured scripts directory doesn't exist.
	ErrScriptsDirNotFound = errors.New("configured scripts directory does not exist")
)

// Config represents the global scriptshelf configuration.
type Config struct {
	Version       string `yaml:"version"`
	ScriptsDir    string `yaml:"scripts_dir"`    // Set by `scriptshelf init`
	ToolsDir      string `yaml:"tools_dir"`      // Where packaged executables land
	Packager      string `yaml:"packager"`       // External freeze tool, default "pyinstaller"
	KeepArtifacts bool   `yaml:"keep_artifacts"` // Skip artifact cleanup after install
	Media         Media  `yaml:"media"`          // Media file settings
}

// Media holds the file extension sets the media subcommands operate on.
type Media struct {
	VideoExtensions    []string `yaml:"video_extensions"`
	SubtitleExtensions []string `yaml:"subtitle_extensions"`
}

// NewConfig creates a new Config with defaults.
func NewConfig() *Config {
	return &Config{
		Version:  Version,
		ToolsDir: DefaultToolsDir(),
		Packager: "pyinstaller",
		Media: Media{
			VideoExtensions:    []string{".avi", ".mp4", ".mkv", ".m4v"},
			SubtitleExtensions: []string{".srt"},
		},
	}
}

// Load loads the config from ~/.config/scriptshelf/config.yaml.
// Returns ErrNotInitialized if config doesn't exist.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.ScriptsDir == "" {
		return nil, ErrNotInitialized
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// LoadOrCreate loads the config if it exists, or creates a new one.
// Unlike Load(), this doesn't require the config to be initialized.
func LoadOrCreate() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		if errors.Is(err, ErrNotInitialized) {
			return NewConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save saves the config to ~/.config/scriptshelf/config.yaml.
func (c *Config) Save() error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills in zero-valued fields after loading an older or
// partial config file.
func (c *Config) applyDefaults() {
	defaults := NewConfig()

	if c.ToolsDir == "" {
		c.ToolsDir = defaults.ToolsDir
	}
	if c.Packager == "" {
		c.Packager = defaults.Packager
	}
	if len(c.Media.VideoExtensions) == 0 {
		c.Media.VideoExtensions = defaults.Media.VideoExtensions
	}
	if len(c.Media.SubtitleExtensions) == 0 {
		c.Media.SubtitleExtensions = defaults.Media.SubtitleExtensions
	}
}

// ScriptsDirOrErr returns the scripts directory and validates it exists.
func (c *Config) ScriptsDirOrErr() (string, error) {
	if c.ScriptsDir == "" {
		return "", ErrNotInitialized
	}

	info, err := os.Stat(c.ScriptsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrScriptsDirNotFound, c.ScriptsDir)
		}
		return "", fmt.Errorf("failed to access scripts directory: %w", err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("scripts path is not a directory: %s", c.ScriptsDir)
	}

	return c.ScriptsDir, nil
}

// SetScriptsDir sets and validates the scripts directory.
func (c *Config) SetScriptsDir(path string) error {
	absPath, err := resolveDir(path)
	if err != nil {
		return err
	}
	c.ScriptsDir = absPath
	return nil
}

// SetToolsDir sets and validates the tools directory.
func (c *Config) SetToolsDir(path string) error {
	absPath, err := resolveDir(path)
	if err != nil {
		return err
	}
	c.ToolsDir = absPath
	return nil
}

// IsInitialized checks if the config exists and has a valid scripts directory.
func IsInitialized() bool {
	cfg, err := Load()
	if err != nil {
		return false
	}
	_, err = cfg.ScriptsDirOrErr()
	return err == nil
}

// resolveDir resolves a path to an absolute existing directory.
func resolveDir(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("path does not exist: %s", absPath)
		}
		return "", fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", absPath)
	}

	return absPath, nil
}
