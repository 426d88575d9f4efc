package rename

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Pilot Part 1", Sanitize(`Pilot: Part 1?`))
	assert.Equal(t, "The Long Way Home", Sanitize("The Long Way Home†"))
	assert.Equal(t, "AB", Sanitize(`A<>|"\/*B`))
	assert.Equal(t, "untouched", Sanitize("untouched"))
}

func TestCapWords(t *testing.T) {
	assert.Equal(t, "Under The Dome", CapWords("under the dome", []string{" "}))
	assert.Equal(t, "Twenty-Four Seven", CapWords("twenty-four seven", []string{" ", "-"}))
	assert.Equal(t, "", CapWords("", []string{" "}))
}

func TestMatchShowSeason_SxEy(t *testing.T) {
	files := []string{
		"under.the.dome.S03E01.720p.mkv",
		"under.the.dome.S03E02.720p.mkv",
	}

	show, season, err := MatchShowSeason(files)
	require.NoError(t, err)

	assert.Equal(t, "Under The Dome", show)
	assert.Equal(t, 3, season)
}

func TestMatchShowSeason_XxY(t *testing.T) {
	show, season, err := MatchShowSeason([]string{"the wire 4x01.avi"})
	require.NoError(t, err)

	assert.Equal(t, "The Wire", show)
	assert.Equal(t, 4, season)
}

func TestMatchShowSeason_NoMatch(t *testing.T) {
	_, _, err := MatchShowSeason([]string{"holiday-video.mp4"})

	assert.ErrorIs(t, err, ErrNoSeasonMatch)
}

func TestGuessURL(t *testing.T) {
	assert.Equal(t,
		"https://en.wikipedia.org/wiki/Under_the_Dome_(season_3)",
		GuessURL("Under the Dome", 3, false))
	assert.Equal(t,
		"https://en.wikipedia.org/wiki/Firefly",
		GuessURL("Firefly", 1, true))
}

func TestEpisodeFileNames(t *testing.T) {
	episodes := []Episode{
		{Numbers: []string{"1"}, Title: "Pilot"},
		{Numbers: []string{"2", "3"}, Title: "Into the Dark"},
		{Numbers: []string{"4"}, Title: `Who: Goes "There"?`},
	}

	names := EpisodeFileNames("Under the Dome", 3, episodes)

	assert.Equal(t, []string{
		"Under the Dome S03E01 - Pilot",
		"Under the Dome S03E02-03 - Into the Dark",
		"Under the Dome S03E04 - Who Goes There",
	}, names)
}

func TestParseRanges(t *testing.T) {
	got, err := ParseRanges("2,5-6,10,13-15")
	require.NoError(t, err)

	assert.Equal(t, []int{2, 5, 6, 10, 13, 14, 15}, got)
}

func TestParseRanges_SingleNumber(t *testing.T) {
	got, err := ParseRanges("7")
	require.NoError(t, err)

	assert.Equal(t, []int{7}, got)
}

func TestParseRanges_Invalid(t *testing.T) {
	for _, spec := range []string{"", "abc", "5-2", "1-", "0", "-3"} {
		_, err := ParseRanges(spec)
		assert.Error(t, err, spec)
	}
}

func TestSelectEpisodes(t *testing.T) {
	episodes := []Episode{
		{Numbers: []string{"1"}, Title: "One"},
		{Numbers: []string{"2", "3"}, Title: "Two and Three"},
		{Numbers: []string{"4"}, Title: "Four"},
	}

	got := SelectEpisodes(episodes, []int{3, 4})

	require.Len(t, got, 2)
	assert.Equal(t, "Two and Three", got[0].Title,
		"a double episode is kept when any of its numbers is selected")
	assert.Equal(t, "Four", got[1].Title)
}

func TestSelectEpisodes_NoMatch(t *testing.T) {
	episodes := []Episode{{Numbers: []string{"1"}, Title: "One"}}

	assert.Empty(t, SelectEpisodes(episodes, []int{9}))
}

func TestBuildPlan(t *testing.T) {
	files := []string{"a.mkv", "b.mp4"}
	names := []string{"Show S01E01 - One", "Show S01E02 - Two"}

	plan := BuildPlan("/season", files, names)

	require.Len(t, plan.Renames, 2)
	assert.Equal(t, Rename{Old: "a.mkv", New: "Show S01E01 - One.mkv"}, plan.Renames[0])
	assert.Equal(t, Rename{Old: "b.mp4", New: "Show S01E02 - Two.mp4"}, plan.Renames[1])
	assert.Empty(t, plan.ExtraFiles)
	assert.Empty(t, plan.ExtraNames)
}

func TestBuildPlan_MoreFilesThanNames(t *testing.T) {
	plan := BuildPlan("/season", []string{"a.mkv", "b.mkv", "extras.mkv"}, []string{"One", "Two"})

	assert.Len(t, plan.Renames, 2)
	assert.Equal(t, []string{"extras.mkv"}, plan.ExtraFiles)
}

func TestBuildPlan_MoreNamesThanFiles(t *testing.T) {
	plan := BuildPlan("/season", []string{"a.mkv"}, []string{"One", "Two"})

	assert.Len(t, plan.Renames, 1)
	assert.Equal(t, []string{"Two"}, plan.ExtraNames)
}

func TestBuildPlan_SkipsAlreadyNamed(t *testing.T) {
	plan := BuildPlan("/season", []string{"One.mkv"}, []string{"One"})

	assert.True(t, plan.Empty())
}

func TestPlanApply(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mkv"), []byte("v"), 0644))

	plan := BuildPlan(dir, []string{"a.mkv"}, []string{"Show S01E01 - Pilot"})
	require.NoError(t, plan.Apply())

	assert.FileExists(t, filepath.Join(dir, "Show S01E01 - Pilot.mkv"))
	assert.NoFileExists(t, filepath.Join(dir, "a.mkv"))
}

func TestBuildSubtitlePlan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Show S01E01 - Pilot.mkv", "Show S01E02 - Two.mp4", "ep1.srt", "ep2.srt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	plan, err := BuildSubtitlePlan(dir, []string{".mkv", ".mp4"}, []string{".srt"})
	require.NoError(t, err)

	require.Len(t, plan.Renames, 2)
	assert.Equal(t, Rename{Old: "ep1.srt", New: "Show S01E01 - Pilot.srt"}, plan.Renames[0])
	assert.Equal(t, Rename{Old: "ep2.srt", New: "Show S01E02 - Two.srt"}, plan.Renames[1])
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mkv", "a.mkv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	files, err := ListFiles(dir, []string{".mkv"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.mkv", "b.mkv"}, files)
}
