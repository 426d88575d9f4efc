package doctor

import (
	"bytes"
	"os"
	"os/exec"
	"regexp"
)

// CommandExecutor is an interface for executing commands, allowing for testing.
type CommandExecutor interface {
	LookPath(file string) (string, error)
	Run(name string, args ...string) (string, error)
	FileExists(path string) bool
}

// RealExecutor is the default command executor that uses the real system.
type RealExecutor struct{}

// LookPath finds the path to an executable.
func (e *RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its output.
func (e *RealExecutor) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		// Some tools print their version to stderr
		if stderr.Len() > 0 {
			return stderr.String(), err
		}
		return stdout.String(), err
	}
	output := stdout.String()
	if output == "" {
		output = stderr.String()
	}
	return output, nil
}

// FileExists checks if a file exists.
func (e *RealExecutor) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CheckPyInstaller checks whether the packaging tool is installed.
func CheckPyInstaller(exec CommandExecutor, tool string) Check {
	if tool == "" {
		tool = IDPyInstaller
	}
	return checkTool(exec, tool, "PyInstaller",
		"Freezes scripts into single-file executables",
		[]string{"--version"}, nil,
		"pip install pyinstaller")
}

// CheckPython checks whether a Python interpreter is available. Windows
// installs ship the interpreter as "python" without a python3 alias, so
// that name is tried when python3 is not on PATH.
func CheckPython(exec CommandExecutor) Check {
	tool := IDPython
	if _, err := exec.LookPath(tool); err != nil {
		if _, err := exec.LookPath("python"); err == nil {
			tool = "python"
		}
	}
	return checkTool(exec, tool, "Python",
		"Interpreter the packaged scripts are written for",
		[]string{"--version"}, nil,
		"https://www.python.org/downloads/")
}

// CheckOpener checks whether the platform's default-application opener is
// available, used by the watch command to launch videos.
func CheckOpener(exec CommandExecutor, opener string) Check {
	return checkTool(exec, opener, "Media opener",
		"Launches videos with the default player",
		nil, nil,
		"")
}

// CheckToolsDir checks whether the tools directory exists.
func CheckToolsDir(exec CommandExecutor, path string) Check {
	check := Check{
		ID:          IDToolsDir,
		Name:        "Tools directory",
		Description: "Installation target for packaged executables",
	}

	if path == "" {
		check.Status = StatusError
		check.Message = "not configured"
		return check
	}

	if !exec.FileExists(path) {
		check.Status = StatusMissing
		check.Message = path + " does not exist"
		check.FixHint = "mkdir -p " + path
		return check
	}

	check.Status = StatusOK
	check.Message = path
	return check
}

// checkTool checks if a tool is installed and gets its version.
func checkTool(exec CommandExecutor, id, name, desc string, versionArgs []string, versionRegex *regexp.Regexp, fixHint string) Check {
	check := Check{
		ID:          id,
		Name:        name,
		Description: desc,
		FixHint:     fixHint,
	}

	path, err := exec.LookPath(id)
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not installed"
		return check
	}

	if versionArgs == nil {
		check.Status = StatusOK
		check.Message = "installed"
		return check
	}

	output, err := exec.Run(path, versionArgs...)
	if err != nil {
		// Tool exists but the version check failed - still consider it OK
		check.Status = StatusOK
		check.Message = "installed (version unknown)"
		return check
	}

	version := extractVersion(output, versionRegex)
	if version != "" {
		check.Status = StatusOK
		check.Message = version
	} else {
		check.Status = StatusOK
		check.Message = "installed"
	}

	return check
}

// extractVersion extracts a version string from command output.
func extractVersion(output string, regex *regexp.Regexp) string {
	if regex == nil {
		regex = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9]+)?)`)
	}
	matches := regex.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}
	return ""
}
