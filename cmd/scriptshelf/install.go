package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"scriptshelf/pkg/freeze"
	"scriptshelf/pkg/globalconfig"
	"scriptshelf/pkg/tui"
)

// newInstallCmd creates the install subcommand
func newInstallCmd() *cobra.Command {
	var scriptsDir, toolsDir, packager string
	var keepArtifacts bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Package scripts and install the executables",
		Long: `Freeze every script in the scripts directory into a single-file executable
and move it into the tools directory.

Each script is packaged with 'pyinstaller --log-level WARN --onefile'. After a
successful install the intermediate build outputs (__pycache__, the .spec file,
build/ and dist/) are removed; failed jobs keep theirs so the failure can be
debugged. A failed script does not stop the rest of the batch.

Directories come from ~/.config/scriptshelf/config.yaml (see 'scriptshelf init');
flags override the config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), scriptsDir, toolsDir, packager, keepArtifacts)
		},
	}

	cmd.Flags().StringVarP(&scriptsDir, "scripts-dir", "s", "", "Directory containing the scripts to package")
	cmd.Flags().StringVarP(&toolsDir, "tools-dir", "t", "", "Directory the executables are installed into")
	cmd.Flags().StringVar(&packager, "packager", "", "Packaging tool to invoke (default pyinstaller)")
	cmd.Flags().BoolVar(&keepArtifacts, "keep-artifacts", false, "Keep build artifacts after a successful install")

	return cmd
}

// runInstall packages every discovered script and reports per-job status.
func runInstall(ctx context.Context, scriptsDir, toolsDir, packager string, keepArtifacts bool) error {
	cfg, err := globalconfig.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if scriptsDir == "" {
		scriptsDir = cfg.ScriptsDir
	}
	if scriptsDir == "" {
		return globalconfig.ErrNotInitialized
	}
	if toolsDir == "" {
		toolsDir = cfg.ToolsDir
	}
	if packager == "" {
		packager = cfg.Packager
	}

	if _, err := os.Stat(toolsDir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("tools directory does not exist: %s", toolsDir)
		}
		return fmt.Errorf("failed to access tools directory: %w", err)
	}

	installer, err := freeze.NewInstaller(scriptsDir, toolsDir)
	if err != nil {
		return err
	}
	installer.Packager = freeze.NewPyInstallerWithRunner(&freeze.ExecRunner{}, packager, installer.WorkDir)
	installer.KeepArtifacts = keepArtifacts || cfg.KeepArtifacts
	installer.Progress = printProgress

	results, err := installer.Run(ctx)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No scripts found.")
		return nil
	}

	installed := 0
	var total time.Duration
	for _, r := range results {
		if r.OK() {
			installed++
		}
		total += r.Duration
	}

	fmt.Println()
	if installed == len(results) {
		fmt.Println(tui.SuccessStyle.Render(
			fmt.Sprintf("Installed %d tool(s) in %s.", installed, total.Round(time.Millisecond))))
		return nil
	}

	fmt.Println(tui.WarningStyle.Render(
		fmt.Sprintf("Installed %d of %d tool(s).", installed, len(results))))
	return fmt.Errorf("%d job(s) failed", len(results)-installed)
}

// printProgress renders installer progress events.
func printProgress(e freeze.ProgressEvent) {
	switch {
	case e.IsError:
		fmt.Printf("%s %s: %s\n", tui.ErrorStyle.Render("FAIL"), e.Job.BaseName, e.Message)
	case e.Stage == freeze.StagePackaging:
		fmt.Printf("%s %s\n", tui.InfoStyle.Render("==>"), e.Message)
	case e.Stage == freeze.StageComplete:
		fmt.Printf("%s %s: %s\n", tui.SuccessStyle.Render(" OK"), e.Job.BaseName, e.Message)
	}
}
