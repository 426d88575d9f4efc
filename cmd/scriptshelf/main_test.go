package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	rootCmd := newRootCmd()

	assert.Equal(t, "scriptshelf", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmdHelp(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "install")
	assert.Contains(t, output, "doctor")
	assert.Contains(t, output, "subsync")
	assert.Contains(t, output, "delaycalc")
	assert.Contains(t, output, "rename")
	assert.Contains(t, output, "watch")
}

func TestRootCmdVersion(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--version"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "scriptshelf version")
}

func TestInitCmd(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	scriptsDir := t.TempDir()
	toolsDir := t.TempDir()

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"init", scriptsDir, toolsDir})

	err := rootCmd.Execute()
	require.NoError(t, err)
}

func TestInstallCmd_NotInitialized(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	rootCmd := newRootCmd()
	rootCmd.SilenceErrors = true
	rootCmd.SetArgs([]string{"install"})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "not initialized")
}

func TestInstallCmd_MissingToolsDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	scriptsDir := t.TempDir()

	rootCmd := newRootCmd()
	rootCmd.SilenceErrors = true
	rootCmd.SetArgs([]string{
		"install",
		"--scripts-dir", scriptsDir,
		"--tools-dir", filepath.Join(t.TempDir(), "nope"),
	})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "tools directory does not exist")
}

func TestSubsyncCmd_InvalidDelay(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	rootCmd := newRootCmd()
	rootCmd.SilenceErrors = true
	rootCmd.SetArgs([]string{"subsync", "not-a-number"})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "invalid delay")
}

func TestSubsyncCmd_NoSubtitles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	emptyDir := t.TempDir()

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"subsync", "500", "--target", emptyDir})

	err := rootCmd.Execute()
	require.NoError(t, err)
}

func TestDelayCalcCmd_UnsupportedFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "subs.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	rootCmd := newRootCmd()
	rootCmd.SilenceErrors = true
	rootCmd.SetArgs([]string{"delaycalc", file, "1000", "2000"})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "unsupported subtitle format")
}

func TestWatchCmd_NoVideos(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	emptyDir := t.TempDir()

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"watch", "--dir", emptyDir})

	err := rootCmd.Execute()
	require.NoError(t, err)
}

func TestRenameCmd_NoVideos(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	emptyDir := t.TempDir()

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"rename", "--dir", emptyDir})

	err := rootCmd.Execute()
	require.NoError(t, err)
}

func TestRenameCmd_InvalidOnly(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	rootCmd := newRootCmd()
	rootCmd.SilenceErrors = true
	rootCmd.SetArgs([]string{"rename", "--dir", t.TempDir(), "--only", "everything"})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "invalid --only")
}

func TestRenameCmd_InvalidRanges(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	rootCmd := newRootCmd()
	rootCmd.SilenceErrors = true
	rootCmd.SetArgs([]string{"rename", "--dir", t.TempDir(), "--ranges", "5-2"})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "invalid episode range")
}

func TestRenameCmd_OnlySubtitles_NothingToDo(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	emptyDir := t.TempDir()

	// Restricting to subtitles must not touch the network for episode titles.
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"rename", "--dir", emptyDir, "--only", "subtitles", "--yes"})

	err := rootCmd.Execute()
	require.NoError(t, err)
}
