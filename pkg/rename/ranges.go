package rename

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRanges parses an episode selection like "2,5-6,10,13-17" into the
// selected episode numbers, in the order given.
func ParseRanges(spec string) ([]int, error) {
	var out []int

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil || start < 1 {
			return nil, fmt.Errorf("invalid episode range %q", part)
		}

		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil || end < start {
				return nil, fmt.Errorf("invalid episode range %q", part)
			}
		}

		for n := start; n <= end; n++ {
			out = append(out, n)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("empty episode range %q", spec)
	}

	return out, nil
}

// SelectEpisodes returns the episodes whose number is in the selection.
// A double episode is kept when any of its numbers is selected.
func SelectEpisodes(episodes []Episode, selected []int) []Episode {
	want := make(map[int]bool, len(selected))
	for _, n := range selected {
		want[n] = true
	}

	var out []Episode
	for _, ep := range episodes {
		for _, s := range ep.Numbers {
			if n, err := strconv.Atoi(s); err == nil && want[n] {
				out = append(out, ep)
				break
			}
		}
	}
	return out
}
