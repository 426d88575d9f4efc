package video

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher starts files with the system's default handler.
type Launcher interface {
	Open(path string) error
}

// SystemLauncher opens files via the platform's opener command: xdg-open
// on Linux, open on macOS, "cmd /c start" on Windows. The player process is
// started detached and not waited on.
type SystemLauncher struct {
	goos  string
	start func(name string, args ...string) error
}

// NewSystemLauncher creates a launcher for the current platform.
func NewSystemLauncher() *SystemLauncher {
	return &SystemLauncher{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Open launches the file with the default media player.
func (l *SystemLauncher) Open(path string) error {
	name, args := l.openerCommand(path)
	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// openerCommand returns the platform opener invocation for a path.
func (l *SystemLauncher) openerCommand(path string) (string, []string) {
	switch l.goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		// The empty string is the window title slot of start.
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}

// OpenerName returns the opener binary used on the given platform, for
// doctor checks.
func OpenerName(goos string) string {
	switch goos {
	case "darwin":
		return "open"
	case "windows":
		return "cmd"
	default:
		return "xdg-open"
	}
}
