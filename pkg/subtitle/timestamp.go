// Package subtitle implements SRT timestamp arithmetic: shifting subtitle
// files by a delay (with an optional growth factor for frame rate
// mismatches) and calculating the delay from known spoken-line times.
package subtitle

import (
	"fmt"
	"regexp"
)

// SupportedExtensions lists the subtitle formats the shift operations accept.
var SupportedExtensions = []string{".srt"}

// timestampRe matches SRT timestamps of the form HH:MM:SS,mmm.
var timestampRe = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2}),(\d{3})`)

// ParseTimestamp parses an SRT timestamp into milliseconds.
func ParseTimestamp(s string) (int64, error) {
	m := timestampRe.FindStringSubmatch(s)
	if m == nil || len(m[0]) != len(s) {
		return 0, fmt.Errorf("invalid SRT timestamp: %q", s)
	}

	var h, min, sec, ms int64
	if _, err := fmt.Sscanf(s, "%02d:%02d:%02d,%03d", &h, &min, &sec, &ms); err != nil {
		return 0, fmt.Errorf("invalid SRT timestamp: %q", s)
	}

	return ((h*60+min)*60+sec)*1000 + ms, nil
}

// FormatTimestamp formats milliseconds as an SRT timestamp.
func FormatTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	h := ms / 3600000
	ms -= h * 3600000
	min := ms / 60000
	ms -= min * 60000
	sec := ms / 1000
	ms -= sec * 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, min, sec, ms)
}

// Timestamps returns every SRT timestamp in the data, in order of
// appearance, converted to milliseconds.
func Timestamps(data string) ([]int64, error) {
	matches := timestampRe.FindAllString(data, -1)

	times := make([]int64, 0, len(matches))
	for _, m := range matches {
		ms, err := ParseTimestamp(m)
		if err != nil {
			return nil, err
		}
		times = append(times, ms)
	}

	return times, nil
}
