package freeze

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultScriptExtensions lists the script formats packaged by default.
var DefaultScriptExtensions = []string{".py"}

// Discover scans a directory for source scripts with one of the given
// extensions and returns their paths in lexical order. Subdirectories and
// dotfiles are skipped. An empty directory yields an empty slice.
func Discover(scriptsDir string, exts []string) ([]string, error) {
	info, err := os.Stat(scriptsDir)
	if err != nil {
		return nil, fmt.Errorf("scripts directory not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scripts path is not a directory: %s", scriptsDir)
	}

	entries, err := os.ReadDir(scriptsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scripts directory: %w", err)
	}

	if len(exts) == 0 {
		exts = DefaultScriptExtensions
	}

	var scripts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !hasExtension(name, exts) {
			continue
		}

		scripts = append(scripts, filepath.Join(scriptsDir, name))
	}

	return scripts, nil
}

// hasExtension reports whether the filename's extension is in the set,
// compared case-insensitively.
func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
