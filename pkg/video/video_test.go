package video

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("video data"), 0644))
	return path
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.mkv")
	nested := writeFile(t, dir, filepath.Join("season1", "b.mp4"))
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, filepath.Join(".cache", "c.mkv"))

	files, err := Find(dir, nil)
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.ElementsMatch(t, []string{a, nested}, paths, "hidden directories must be skipped")
}

func TestFind_NoVideos(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt")

	files, err := Find(dir, nil)

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFind_CustomExtensions(t *testing.T) {
	dir := t.TempDir()
	webm := writeFile(t, dir, "clip.webm")
	writeFile(t, dir, "clip.mkv")

	files, err := Find(dir, []string{".webm"})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, webm, files[0].Path)
}

func TestShuffle_KeepsAllFiles(t *testing.T) {
	files := []File{{Path: "a"}, {Path: "b"}, {Path: "c"}, {Path: "d"}}

	Shuffle(files)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, paths)
}

func TestRelPaths(t *testing.T) {
	dir := string(filepath.Separator) + "media"
	files := []File{{Path: filepath.Join(dir, "season1", "a.mkv")}}

	rels := RelPaths(dir, files)

	assert.Equal(t, []string{filepath.Join("season1", "a.mkv")}, rels)
}

func TestSystemLauncher_OpenerCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"linux", "xdg-open", []string{"/m/a.mkv"}},
		{"darwin", "open", []string{"/m/a.mkv"}},
		{"windows", "cmd", []string{"/c", "start", "", "/m/a.mkv"}},
	}

	for _, tt := range tests {
		l := &SystemLauncher{goos: tt.goos}
		name, args := l.openerCommand("/m/a.mkv")

		assert.Equal(t, tt.wantName, name, tt.goos)
		assert.Equal(t, tt.wantArgs, args, tt.goos)
	}
}

func TestSystemLauncher_Open(t *testing.T) {
	var gotName string
	var gotArgs []string

	l := &SystemLauncher{
		goos: "linux",
		start: func(name string, args ...string) error {
			gotName = name
			gotArgs = args
			return nil
		},
	}

	require.NoError(t, l.Open("/m/a.mkv"))

	assert.Equal(t, "xdg-open", gotName)
	assert.Equal(t, []string{"/m/a.mkv"}, gotArgs)
}

func TestOpenerName(t *testing.T) {
	assert.Equal(t, "xdg-open", OpenerName("linux"))
	assert.Equal(t, "open", OpenerName("darwin"))
	assert.Equal(t, "cmd", OpenerName("windows"))
}
