package freeze

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRunner is a mock command runner for testing.
type MockRunner struct {
	LookPathFunc func(file string) (string, error)
	RunFunc      func(ctx context.Context, dir, name string, args ...string) (string, string, error)

	Calls [][]string
}

func (m *MockRunner) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

func (m *MockRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if m.RunFunc != nil {
		return m.RunFunc(ctx, dir, name, args...)
	}
	return "", "", nil
}

func TestPyInstaller_Package(t *testing.T) {
	runner := &MockRunner{}
	p := NewPyInstallerWithRunner(runner, "", "/work")

	artifact, err := p.Package(context.Background(), "/scripts/subsync.py")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/work", "dist", "subsync"+ExecutableExt()), artifact)
	require.Len(t, runner.Calls, 1)
	assert.Equal(t, []string{"/usr/bin/pyinstaller", "--log-level", "WARN", "--onefile", "/scripts/subsync.py"}, runner.Calls[0])
}

func TestPyInstaller_Package_ToolNotFound(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "", exec.ErrNotFound
		},
	}
	p := NewPyInstallerWithRunner(runner, "", "/work")

	_, err := p.Package(context.Background(), "/scripts/subsync.py")

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "pyinstaller", toolErr.Tool)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Empty(t, runner.Calls, "tool missing from PATH must not invoke anything")
}

func TestPyInstaller_Package_NonzeroExit(t *testing.T) {
	runner := &MockRunner{
		RunFunc: func(ctx context.Context, dir, name string, args ...string) (string, string, error) {
			return "", "ModuleNotFoundError: No module named 'requests'\n", errors.New("exit status 1")
		},
	}
	p := NewPyInstallerWithRunner(runner, "", "/work")

	_, err := p.Package(context.Background(), "/scripts/renamer.py")

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Contains(t, toolErr.Error(), "ModuleNotFoundError")
}

func TestPyInstaller_CustomTool(t *testing.T) {
	runner := &MockRunner{}
	p := NewPyInstallerWithRunner(runner, "pyinstaller3", "/work")

	assert.Equal(t, "pyinstaller3", p.Name())
}
