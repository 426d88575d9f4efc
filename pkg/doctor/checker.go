package doctor

import (
	"runtime"

	"scriptshelf/pkg/video"
)

// Checker runs the dependency checks for the installed configuration.
type Checker struct {
	executor CommandExecutor
	packager string
	toolsDir string
	opener   string
}

// NewChecker creates a Checker with the real command executor.
func NewChecker(packager, toolsDir string) *Checker {
	return &Checker{
		executor: &RealExecutor{},
		packager: packager,
		toolsDir: toolsDir,
		opener:   video.OpenerName(runtime.GOOS),
	}
}

// NewCheckerWithExecutor creates a Checker with a custom executor (for testing).
func NewCheckerWithExecutor(exec CommandExecutor, packager, toolsDir string) *Checker {
	return &Checker{
		executor: exec,
		packager: packager,
		toolsDir: toolsDir,
		opener:   video.OpenerName(runtime.GOOS),
	}
}

// CheckAll runs every check and returns the results.
func (c *Checker) CheckAll() []Check {
	return []Check{
		CheckPython(c.executor),
		CheckPyInstaller(c.executor, c.packager),
		CheckToolsDir(c.executor, c.toolsDir),
		CheckOpener(c.executor, c.opener),
	}
}

// Summary represents an overall health summary.
type Summary struct {
	Total    int
	OK       int
	Missing  int
	Warnings int
	Errors   int
}

// GetSummary returns a summary of check results.
func GetSummary(checks []Check) Summary {
	var summary Summary

	for _, check := range checks {
		summary.Total++
		switch check.Status {
		case StatusOK:
			summary.OK++
		case StatusMissing:
			summary.Missing++
		case StatusWarning:
			summary.Warnings++
		case StatusError:
			summary.Errors++
		}
	}

	return summary
}

// HasIssues returns true if any checks have issues.
func HasIssues(checks []Check) bool {
	summary := GetSummary(checks)
	return summary.Missing > 0 || summary.Errors > 0
}
