// Package video finds video files and launches them with the system's
// default media player.
package video

import (
	"fmt"
	"io/fs"
	"math/rand"
	"path/filepath"
	"strings"
)

// DefaultExtensions lists the video formats supported for playback.
var DefaultExtensions = []string{".avi", ".mp4", ".mkv", ".m4v"}

// File is one discovered video file.
type File struct {
	Path string
	Size int64
}

// Find walks the tree rooted at dir and returns every video file with one
// of the given extensions. Hidden directories are skipped.
func Find(dir string, exts []string) ([]File, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	var files []File
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !hasExtension(d.Name(), exts) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		files = append(files, File{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	return files, nil
}

// Shuffle randomises the order of the files in place.
func Shuffle(files []File) {
	rand.Shuffle(len(files), func(i, j int) {
		files[i], files[j] = files[j], files[i]
	})
}

// RelPaths returns the files' paths relative to dir, falling back to the
// absolute path when a relative one can't be built.
func RelPaths(dir string, files []File) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f.Path)
		if err != nil {
			rel = f.Path
		}
		out = append(out, rel)
	}
	return out
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
