package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Targets resolves a sync target to the list of subtitle files to operate
// on. A file target must have a supported extension; a directory target
// yields every supported subtitle file directly inside it.
func Targets(path string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = SupportedExtensions
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("target not found: %w", err)
	}

	if !info.IsDir() {
		if !supportedExt(path, exts) {
			return nil, fmt.Errorf("%q is of unsupported subtitle format", path)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target directory: %w", err)
	}

	var subs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExt(entry.Name(), exts) {
			subs = append(subs, filepath.Join(path, entry.Name()))
		}
	}

	return subs, nil
}

// SyncFile applies Shift to a subtitle file in place.
func SyncFile(path string, delayMS int64, growth float64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	shifted, err := Shift(string(data), delayMS, growth)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat subtitle file: %w", err)
	}

	if err := os.WriteFile(path, []byte(shifted), info.Mode()); err != nil {
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}

	return nil
}

func supportedExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
