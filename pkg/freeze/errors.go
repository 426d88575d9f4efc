package freeze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceNotFound is returned when the script to package does not exist.
	ErrSourceNotFound = errors.New("source script not found")
	// ErrArtifactMissing is returned when the packager reported success but
	// produced no binary in the dist directory.
	ErrArtifactMissing = errors.New("packaged binary not found in dist directory")
)

// ToolError represents a failure of the external packaging tool, either
// because it is not installed or because it exited nonzero.
type ToolError struct {
	Tool   string // Tool name, e.g. "pyinstaller"
	Output string // Trimmed stderr from the tool, if any
	Err    error  // Underlying error (exec.ErrNotFound, *exec.ExitError, ...)
}

// Error returns the error message, including tool output when available.
func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg = fmt.Sprintf("%s: %s", msg, out)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error {
	return e.Err
}
