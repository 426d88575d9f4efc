package freeze

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// artifactPaths returns the intermediate build outputs the packager leaves
// behind for a job, relative to the working directory: the script's bytecode
// cache, the generated spec file, the build directory and the dist directory.
func artifactPaths(workDir string, job Job) []string {
	return []string{
		filepath.Join(filepath.Dir(job.SourcePath), "__pycache__"),
		filepath.Join(workDir, job.BaseName+".spec"),
		filepath.Join(workDir, "build"),
		filepath.Join(workDir, "dist"),
	}
}

// CleanupArtifacts removes the intermediate build outputs for a job.
// Missing paths are not an error; removal failures are collected.
func CleanupArtifacts(workDir string, job Job) error {
	var errs []error
	for _, path := range artifactPaths(workDir, job) {
		if err := os.RemoveAll(path); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", path, err))
		}
	}
	return errors.Join(errs...)
}
