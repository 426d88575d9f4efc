package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scriptshelf/pkg/globalconfig"
	"scriptshelf/pkg/subtitle"
	"scriptshelf/pkg/tui"
)

// newSubsyncCmd creates the subsync subcommand
func newSubsyncCmd() *cobra.Command {
	var target string
	var growth float64
	var yes bool

	cmd := &cobra.Command{
		Use:   "subsync <delay-ms>",
		Short: "Synchronise subtitle files with a delay",
		Long: `Shift every timestamp in the target subtitle file(s) by the given delay in
milliseconds. Positive delays push subtitles later, negative delays pull them
earlier.

The growth factor compensates for subtitles authored against a different frame
rate, where the delay grows or shrinks through the video. 1.0 (the default and
minimum) applies a constant delay; use 'scriptshelf delaycalc' to derive the
right values.

The target may be a single subtitle file or a directory, in which case every
subtitle file directly inside it is synchronised.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			delay, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid delay %q: must be an integer number of milliseconds", args[0])
			}
			return runSubsync(delay, target, growth, yes)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", ".", "Subtitle file or directory to adjust")
	cmd.Flags().Float64VarP(&growth, "growth", "g", 1.0, "Delay growth factor (minimum 1.0)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runSubsync(delay int64, target string, growth float64, yes bool) error {
	if growth < 1.0 {
		return subtitle.ErrGrowthTooSmall
	}

	cfg, err := globalconfig.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	subs, err := subtitle.Targets(target, cfg.Media.SubtitleExtensions)
	if err != nil {
		return err
	}

	if len(subs) == 0 {
		fmt.Println("No subtitles to synchronise.")
		return nil
	}

	if !yes {
		question := fmt.Sprintf("Synchronise %d file(s) with %dms delay and growth factor %g?",
			len(subs), delay, growth)
		confirmed, err := tui.ConfirmList("Files to synchronise", subs, question)
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	for _, sub := range subs {
		fmt.Printf("Syncing %s\n", sub)
		if err := subtitle.SyncFile(sub, delay, growth); err != nil {
			return fmt.Errorf("%s: %w", sub, err)
		}
	}

	fmt.Println(tui.SuccessStyle.Render(fmt.Sprintf("Synchronised %d file(s).", len(subs))))
	return nil
}
