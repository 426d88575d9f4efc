package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Rename is one pending old-name-to-new-name move.
type Rename struct {
	Old string
	New string
}

// Plan is an ordered set of renames inside one directory, plus anything
// left over when file and name counts don't line up. Callers are expected
// to confirm surpluses with the user before applying.
type Plan struct {
	Dir        string
	Renames    []Rename
	ExtraFiles []string // Files with no generated name
	ExtraNames []string // Generated names with no file
}

// Empty reports whether the plan contains no renames.
func (p Plan) Empty() bool {
	return len(p.Renames) == 0
}

// Apply performs every rename in the plan.
func (p Plan) Apply() error {
	for _, r := range p.Renames {
		oldPath := filepath.Join(p.Dir, r.Old)
		newPath := filepath.Join(p.Dir, r.New)
		if err := os.Rename(oldPath, newPath); err != nil {
			return fmt.Errorf("failed to rename %s: %w", r.Old, err)
		}
	}
	return nil
}

// ListFiles returns the names of files in dir with one of the given
// extensions, in lexical order.
func ListFiles(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasExt(entry.Name(), exts) {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)
	return files, nil
}

// BuildPlan pairs existing filenames with generated names positionally,
// keeping each file's own extension. Surplus files or names are recorded
// rather than silently dropped.
func BuildPlan(dir string, files, newNames []string) Plan {
	plan := Plan{Dir: dir}

	n := len(files)
	if len(newNames) < n {
		n = len(newNames)
	}

	for i := 0; i < n; i++ {
		newName := newNames[i] + filepath.Ext(files[i])
		if files[i] == newName {
			continue
		}
		plan.Renames = append(plan.Renames, Rename{Old: files[i], New: newName})
	}

	plan.ExtraFiles = append(plan.ExtraFiles, files[n:]...)
	plan.ExtraNames = append(plan.ExtraNames, newNames[n:]...)

	return plan
}

// BuildSubtitlePlan renames subtitle files after the video files in the
// same directory, so that players auto-load them. Videos must already
// carry their final names.
func BuildSubtitlePlan(dir string, videoExts, subtitleExts []string) (Plan, error) {
	videos, err := ListFiles(dir, videoExts)
	if err != nil {
		return Plan{}, err
	}

	baseNames := make([]string, 0, len(videos))
	for _, v := range videos {
		baseNames = append(baseNames, strings.TrimSuffix(v, filepath.Ext(v)))
	}

	subs, err := ListFiles(dir, subtitleExts)
	if err != nil {
		return Plan{}, err
	}

	return BuildPlan(dir, subs, baseNames), nil
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
