// Package main provides the scriptshelf CLI tool for packaging standalone
// scripts into single-file executables and installing them into a tools
// directory, plus the media helpers that live alongside them.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for scriptshelf
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scriptshelf",
		Short: "Script packaging and media toolbox",
		Long: `scriptshelf packages standalone scripts into single-file executables and
installs them into your tools directory.

It supports:
  - Freezing every script in a directory via PyInstaller and installing
    the binaries, with build artifacts cleaned up afterwards
  - Checking that the packaging toolchain is installed (doctor)
  - Synchronising subtitle files with a delay and growth factor
  - Calculating a subtitle file's delay from known spoken-line times
  - Renaming a season's videos to episode titles from Wikipedia
  - Picking a random video and launching the default player`,
		Version: version,
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newInstallCmd(),
		newDoctorCmd(),
		newSubsyncCmd(),
		newDelayCalcCmd(),
		newRenameCmd(),
		newWatchCmd(),
	)

	return rootCmd
}
