package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptshelf/pkg/globalconfig"
	"scriptshelf/pkg/tui"
	"scriptshelf/pkg/video"
)

// newWatchCmd creates the watch subcommand
func newWatchCmd() *cobra.Command {
	var dir string
	var ask, first bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Pick a random video and play it",
		Long: `Scan the directory tree for video files, shuffle them, and launch one with
the system's default media player.

By default an interactive picker shows the shuffled list. With --ask each file
is offered in turn with a yes/no prompt; with --first the first pick plays
immediately.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWatch(dir, ask, first)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to scan for video files")
	cmd.Flags().BoolVar(&ask, "ask", false, "Offer each file in turn instead of showing the picker")
	cmd.Flags().BoolVar(&first, "first", false, "Play the first pick without prompting")

	return cmd
}

func runWatch(dir string, ask, first bool) error {
	cfg, err := globalconfig.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	files, err := video.Find(dir, cfg.Media.VideoExtensions)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Println("No video files found.")
		return nil
	}

	video.Shuffle(files)
	launcher := video.NewSystemLauncher()

	switch {
	case first:
		fmt.Printf("Playing %s\n", files[0].Path)
		return launcher.Open(files[0].Path)

	case ask:
		for i, rel := range video.RelPaths(dir, files) {
			confirmed, err := tui.Confirm(rel+"?", "")
			if err != nil {
				return err
			}
			if confirmed {
				return launcher.Open(files[i].Path)
			}
		}
		fmt.Println("No more video files.")
		return nil

	default:
		picked, err := video.RunPicker(dir, files)
		if err != nil {
			return err
		}
		if picked == nil {
			return nil
		}
		fmt.Printf("Playing %s\n", picked.Path)
		return launcher.Open(picked.Path)
	}
}
