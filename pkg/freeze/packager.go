package freeze

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultPackagerName is the external tool used to freeze scripts by default.
const DefaultPackagerName = "pyinstaller"

// Packager converts a source script into a single-file executable and
// returns the path of the produced binary.
type Packager interface {
	// Name returns the tool name, for status output and error messages.
	Name() string
	// Package freezes the script at sourcePath and returns the artifact path.
	Package(ctx context.Context, sourcePath string) (string, error)
}

// PyInstaller packages scripts by shelling out to the pyinstaller tool.
// Artifacts land in dist/ under the working directory; pyinstaller also
// leaves a build/ directory and a .spec file behind.
type PyInstaller struct {
	runner  CommandRunner
	tool    string
	workDir string
}

// NewPyInstaller creates a PyInstaller packager that runs in workDir.
func NewPyInstaller(workDir string) *PyInstaller {
	return &PyInstaller{
		runner:  &ExecRunner{},
		tool:    DefaultPackagerName,
		workDir: workDir,
	}
}

// NewPyInstallerWithRunner creates a PyInstaller packager with a custom
// command runner (for testing) and tool name.
func NewPyInstallerWithRunner(runner CommandRunner, tool, workDir string) *PyInstaller {
	if tool == "" {
		tool = DefaultPackagerName
	}
	return &PyInstaller{
		runner:  runner,
		tool:    tool,
		workDir: workDir,
	}
}

// Name returns the packager tool name.
func (p *PyInstaller) Name() string {
	return p.tool
}

// Package runs the packager in single-file mode with warning-level logging
// and returns the path of the binary it produced.
func (p *PyInstaller) Package(ctx context.Context, sourcePath string) (string, error) {
	path, err := p.runner.LookPath(p.tool)
	if err != nil {
		return "", &ToolError{Tool: p.tool, Err: err}
	}

	_, stderr, err := p.runner.Run(ctx, p.workDir, path,
		"--log-level", "WARN", "--onefile", sourcePath)
	if err != nil {
		return "", &ToolError{Tool: p.tool, Output: strings.TrimSpace(stderr), Err: err}
	}

	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(p.workDir, "dist", base+ExecutableExt()), nil
}

// ExecutableExt returns the platform's executable file extension.
func ExecutableExt() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
