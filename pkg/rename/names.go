package rename

import (
	"fmt"
	"strconv"
	"strings"
)

// EpisodeFileNames generates one filename per episode, without extension:
// "Show S02E05 - Title", or "Show S02E05-06 - Title" for double episodes.
// Names are sanitised for use as filenames.
func EpisodeFileNames(show string, season int, episodes []Episode) []string {
	names := make([]string, 0, len(episodes))

	for _, ep := range episodes {
		var nums []string
		for _, n := range ep.Numbers {
			nums = append(nums, padNumber(n))
		}

		name := fmt.Sprintf("%s S%02dE%s - %s", show, season, strings.Join(nums, "-"), ep.Title)
		names = append(names, Sanitize(name))
	}

	return names
}

// padNumber zero-pads a numeric episode number to two digits; non-numeric
// markers pass through unchanged.
func padNumber(n string) string {
	v, err := strconv.Atoi(n)
	if err != nil {
		return n
	}
	return fmt.Sprintf("%02d", v)
}
