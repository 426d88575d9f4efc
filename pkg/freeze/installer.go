// Package freeze packages standalone scripts into single-file executables
// and installs them into a tools directory.
package freeze

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Installer freezes every script in a scripts directory and moves the
// produced binaries into the tools directory. Jobs run strictly one at a
// time; a failed job does not stop the rest of the batch.
type Installer struct {
	ScriptsDir string
	ToolsDir   string
	Extensions []string
	Packager   Packager
	WorkDir    string

	// KeepArtifacts skips artifact cleanup after a successful install.
	// Failed jobs always keep their build outputs for diagnostics.
	KeepArtifacts bool

	Progress ProgressCallback
}

// NewInstaller creates an installer with the default packager, working in
// the current directory.
func NewInstaller(scriptsDir, toolsDir string) (*Installer, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	return &Installer{
		ScriptsDir: scriptsDir,
		ToolsDir:   toolsDir,
		Extensions: DefaultScriptExtensions,
		Packager:   NewPyInstaller(workDir),
		WorkDir:    workDir,
		Progress:   NoOpProgress,
	}, nil
}

// Install packages a single script and moves the produced binary into the
// tools directory. Artifacts are cleaned up only after a successful move, so
// a failed run keeps its build outputs for debugging.
func (in *Installer) Install(ctx context.Context, job Job) (string, error) {
	if _, err := os.Stat(job.SourcePath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, job.SourcePath)
		}
		return "", fmt.Errorf("failed to access source script: %w", err)
	}

	in.Progress(newEvent(StagePackaging, job, "packaging "+job.BaseName))

	artifact, err := in.Packager.Package(ctx, job.SourcePath)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(artifact); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrArtifactMissing, artifact)
		}
		return "", fmt.Errorf("failed to access packaged binary: %w", err)
	}

	destPath := filepath.Join(in.ToolsDir, job.BaseName+ExecutableExt())

	in.Progress(newEvent(StageInstalling, job, "installing to "+destPath))

	if err := moveFile(artifact, destPath); err != nil {
		return "", fmt.Errorf("failed to install binary: %w", err)
	}

	if !in.KeepArtifacts {
		in.Progress(newEvent(StageCleanup, job, "removing build artifacts"))
		if err := CleanupArtifacts(in.WorkDir, job); err != nil {
			return destPath, fmt.Errorf("installed, but cleanup failed: %w", err)
		}
	}

	return destPath, nil
}

// Run discovers all scripts and installs them one at a time, continuing past
// per-job failures. It returns every job's result; the error is non-nil only
// when discovery itself fails.
func (in *Installer) Run(ctx context.Context) ([]Result, error) {
	in.Progress(newEvent(StageDiscovering, Job{}, "scanning "+in.ScriptsDir))

	scripts, err := Discover(in.ScriptsDir, in.Extensions)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(scripts))
	for _, script := range scripts {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		job := NewJob(script)
		start := time.Now()

		destPath, err := in.Install(ctx, job)
		result := Result{
			Job:      job,
			DestPath: destPath,
			Err:      err,
			Duration: time.Since(start),
		}

		if err != nil {
			in.Progress(newErrorEvent(job, err.Error()))
		} else {
			in.Progress(newEvent(StageComplete, job, "installed "+destPath))
		}

		results = append(results, result)
	}

	return results, nil
}

// moveFile moves src to dst, overwriting any existing file. Rename is tried
// first; a copy-and-remove fallback handles cross-device moves.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		os.Remove(dst)
		return err
	}

	if err := dstFile.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}
