package rename

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoSeasonMatch is returned when no video filename carries a
// recognisable season/episode marker.
var ErrNoSeasonMatch = errors.New("could not match show name and season number from video filenames")

// Season/episode marker formats, tried in order: "Show S03E14..." then
// "Show 3x14...".
var (
	sXeYRe = regexp.MustCompile(`(?i)^(.*?)s(\d+)ep?\d+.*?$`)
	xXyRe  = regexp.MustCompile(`(?i)^(.*?)(\d+)x\d+.*?$`)
)

// MatchShowSeason derives the show name and season number from a list of
// video filenames. Dots in the matched name are treated as word separators.
func MatchShowSeason(filenames []string) (string, int, error) {
	for _, re := range []*regexp.Regexp{sXeYRe, xXyRe} {
		for _, fn := range filenames {
			m := re.FindStringSubmatch(fn)
			if m == nil {
				continue
			}

			name := strings.TrimSpace(strings.ReplaceAll(m[1], ".", " "))
			if name == "" {
				continue
			}
			name = CapWords(name, []string{" ", "-"})

			season, err := strconv.Atoi(m[2])
			if err != nil || season < 1 {
				continue
			}

			return name, season, nil
		}
	}

	return "", 0, ErrNoSeasonMatch
}

// GuessURL builds the Wikipedia URL for the show's season article.
// Single-season shows have no per-season article, so the bare article URL
// is used instead.
func GuessURL(show string, season int, single bool) string {
	slug := strings.ReplaceAll(show, " ", "_")
	if single {
		return fmt.Sprintf("https://en.wikipedia.org/wiki/%s", slug)
	}
	return fmt.Sprintf("https://en.wikipedia.org/wiki/%s_(season_%d)", slug, season)
}
