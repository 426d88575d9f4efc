package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scriptshelf/pkg/globalconfig"
)

// newInitCmd creates the init subcommand
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <scripts-dir> [tools-dir]",
		Short: "Initialize scriptshelf with a scripts directory",
		Long: `Initialize scriptshelf by setting the scripts and tools directories in
~/.config/scriptshelf/config.yaml.

The scripts directory holds the source scripts to package; the tools directory
is where the produced executables are installed. When the tools directory is
omitted, the platform default is kept.

Examples:
  scriptshelf init .                       # Use current directory for scripts
  scriptshelf init ~/scripts C:\tools      # Explicit tools directory`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runInit,
	}
}

func runInit(_ *cobra.Command, args []string) error {
	scriptsDir := args[0]

	if scriptsDir == "." {
		var err error
		scriptsDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	cfg, err := globalconfig.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.SetScriptsDir(scriptsDir); err != nil {
		return err
	}

	if len(args) == 2 {
		if err := cfg.SetToolsDir(args[1]); err != nil {
			return err
		}
	} else if _, err := os.Stat(cfg.ToolsDir); os.IsNotExist(err) {
		fmt.Printf("Warning: tools directory %s does not exist\n", cfg.ToolsDir)
		fmt.Println("Create it before running 'scriptshelf install', or pass one here.")
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	configPath, err := globalconfig.GetConfigPath()
	if err != nil {
		configPath = "~/.config/scriptshelf/config.yaml" // fallback for display
	}
	fmt.Printf("Initialized scriptshelf with scripts directory: %s\n", cfg.ScriptsDir)
	fmt.Printf("Tools directory: %s\n", cfg.ToolsDir)
	fmt.Printf("Config saved to: %s\n", configPath)

	return nil
}
