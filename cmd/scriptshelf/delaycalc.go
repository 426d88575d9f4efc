package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"scriptshelf/pkg/subtitle"
)

// newDelayCalcCmd creates the delaycalc subcommand
func newDelayCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delaycalc <subtitle-file> <time1-ms> <time2-ms>",
		Short: "Calculate a subtitle file's delay and growth factor",
		Long: `Calculate how far behind the video a subtitle file runs, given the times (in
milliseconds) of the first and last spoken lines in the video.

The growth factor accounts for subtitles authored against a different frame
rate, where the delay changes through the video. Feed the results to
'scriptshelf subsync'.`,
		Args: cobra.ExactArgs(3),
		RunE: runDelayCalc,
	}
}

func runDelayCalc(_ *cobra.Command, args []string) error {
	file := args[0]

	time1, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid time1 %q: must be milliseconds", args[1])
	}
	time2, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid time2 %q: must be milliseconds", args[2])
	}

	// Validates the extension as a side effect.
	if _, err := subtitle.Targets(file, nil); err != nil {
		return err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read subtitle file: %w", err)
	}

	d, err := subtitle.CalcDelay(string(data), time1, time2)
	if err != nil {
		return err
	}

	fmt.Printf("Initial delay: %.0f ms\n", d.InitialMS)
	fmt.Printf("Growth factor: %.12f\n", d.Growth)
	return nil
}
