package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptshelf/pkg/doctor"
	"scriptshelf/pkg/globalconfig"
	"scriptshelf/pkg/tui"
)

// newDoctorCmd creates the doctor subcommand
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that required external tools are installed",
		Long: `Check that the packaging toolchain (Python, PyInstaller), the tools
directory and the media opener are available, and print fix hints for
anything missing.`,
		RunE: runDoctor,
	}
}

func runDoctor(_ *cobra.Command, _ []string) error {
	cfg, err := globalconfig.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	checker := doctor.NewChecker(cfg.Packager, cfg.ToolsDir)
	checks := checker.CheckAll()

	fmt.Println(tui.TitleStyle.Render("Environment checks"))

	for _, check := range checks {
		var status string
		switch check.Status {
		case doctor.StatusOK:
			status = tui.SuccessStyle.Render("ok")
		case doctor.StatusMissing:
			status = tui.ErrorStyle.Render("missing")
		case doctor.StatusWarning:
			status = tui.WarningStyle.Render("warning")
		default:
			status = tui.ErrorStyle.Render("error")
		}

		fmt.Printf("  %-18s %-8s %s\n", check.Name, status, check.Message)
		if check.Status == doctor.StatusMissing && check.FixHint != "" {
			fmt.Printf("  %s\n", tui.DimStyle.Render("    fix: "+check.FixHint))
		}
	}

	summary := doctor.GetSummary(checks)
	fmt.Println()

	if doctor.HasIssues(checks) {
		return fmt.Errorf("%d of %d checks failed", summary.Missing+summary.Errors, summary.Total)
	}

	fmt.Println(tui.SuccessStyle.Render("All checks passed."))
	return nil
}
