package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"scriptshelf/pkg/globalconfig"
	"scriptshelf/pkg/rename"
	"scriptshelf/pkg/tui"
)

// Values for the rename --only flag.
const (
	onlyVideos    = "videos"
	onlySubtitles = "subtitles"
)

type renameOptions struct {
	dir    string
	show   string
	season int
	single bool
	url    string
	ranges string
	only   string
	yes    bool
}

// newRenameCmd creates the rename subcommand
func newRenameCmd() *cobra.Command {
	var opts renameOptions

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a season's videos to Wikipedia episode titles",
		Long: `Rename the video files of one season to their episode titles, scraped from
the show's Wikipedia episode table, then rename the subtitle files after the
videos so media players auto-load them.

The show name and season number are matched from the video filenames (S03E14
or 3x14 markers) unless given explicitly. Shows with a single season use the
bare article URL; pass --single for those.

When the directory holds only part of a season, --ranges selects the episodes
to use, e.g. --ranges "2,5-6,13-17". --only restricts the run to the video
files or the subtitle files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Directory containing the season's files")
	cmd.Flags().StringVar(&opts.show, "show", "", "Show name (matched from filenames when omitted)")
	cmd.Flags().IntVar(&opts.season, "season", 0, "Season number (matched from filenames when omitted)")
	cmd.Flags().BoolVar(&opts.single, "single", false, "The show has only one season")
	cmd.Flags().StringVar(&opts.url, "url", "", "Wikipedia URL to scrape (guessed when omitted)")
	cmd.Flags().StringVarP(&opts.ranges, "ranges", "r", "", `Episode subset to use, e.g. "2,5-6,13-17"`)
	cmd.Flags().StringVar(&opts.only, "only", "", `Rename only "videos" or "subtitles"`)
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompts")

	return cmd
}

func runRename(ctx context.Context, opts renameOptions) error {
	if opts.only != "" && opts.only != onlyVideos && opts.only != onlySubtitles {
		return fmt.Errorf("invalid --only %q: must be %q or %q", opts.only, onlyVideos, onlySubtitles)
	}

	var selected []int
	if opts.ranges != "" {
		var err error
		selected, err = rename.ParseRanges(opts.ranges)
		if err != nil {
			return err
		}
	}

	cfg, err := globalconfig.LoadOrCreate()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.only != onlySubtitles {
		if err := renameVideos(ctx, cfg, opts, selected); err != nil {
			return err
		}
	}

	if opts.only == onlyVideos {
		return nil
	}

	subPlan, err := rename.BuildSubtitlePlan(opts.dir, cfg.Media.VideoExtensions, cfg.Media.SubtitleExtensions)
	if err != nil {
		return err
	}

	return applyPlan(subPlan, "Subtitles to rename", opts.yes)
}

// renameVideos scrapes the episode table and renames the video files.
func renameVideos(ctx context.Context, cfg *globalconfig.Config, opts renameOptions, selected []int) error {
	videos, err := rename.ListFiles(opts.dir, cfg.Media.VideoExtensions)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		fmt.Println("No video files found.")
		return nil
	}

	show, season := opts.show, opts.season
	if show == "" || season == 0 {
		matchedShow, matchedSeason, err := rename.MatchShowSeason(videos)
		if err != nil {
			return fmt.Errorf("%w; pass --show and --season", err)
		}
		if show == "" {
			show = matchedShow
		}
		if season == 0 {
			season = matchedSeason
		}
	}
	if opts.single {
		season = 1
	}

	url := opts.url
	if url == "" {
		url = rename.GuessURL(show, season, opts.single)
		fmt.Printf("Guessed link: %s\n", url)
	}

	episodes, err := rename.NewClient().FetchEpisodes(ctx, url, opts.single)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		return fmt.Errorf("no episodes found at %s", url)
	}

	if selected != nil {
		episodes = rename.SelectEpisodes(episodes, selected)
		if len(episodes) == 0 {
			return fmt.Errorf("no episodes at %s match the ranges %q", url, opts.ranges)
		}
	}

	names := rename.EpisodeFileNames(show, season, episodes)
	plan := rename.BuildPlan(opts.dir, videos, names)

	return applyPlan(plan, "Videos to rename", opts.yes)
}

// applyPlan confirms and performs one rename plan, surfacing any count
// mismatch between files and generated names.
func applyPlan(plan rename.Plan, title string, yes bool) error {
	if plan.Empty() {
		fmt.Printf("%s: nothing to do.\n", title)
		return nil
	}

	if len(plan.ExtraFiles) > 0 {
		fmt.Println(tui.WarningStyle.Render("More files than names; these will be left untouched:"))
		for _, f := range plan.ExtraFiles {
			fmt.Printf("  %s\n", f)
		}
	}
	if len(plan.ExtraNames) > 0 {
		fmt.Println(tui.WarningStyle.Render("More names than files; these names will be unused:"))
		for _, n := range plan.ExtraNames {
			fmt.Printf("  %s\n", n)
		}
	}

	if !yes {
		items := make([]string, 0, len(plan.Renames))
		for _, r := range plan.Renames {
			items = append(items, fmt.Sprintf("%s --> %s", r.Old, r.New))
		}

		confirmed, err := tui.ConfirmList(title, items, "Continue?")
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	if err := plan.Apply(); err != nil {
		return err
	}

	fmt.Println(tui.SuccessStyle.Render(fmt.Sprintf("Renamed %d file(s).", len(plan.Renames))))
	return nil
}
