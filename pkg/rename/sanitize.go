// Package rename renames a season's video files to episode titles scraped
// from the show's Wikipedia episode table, then renames subtitle files to
// match the videos so media players auto-load them.
package rename

import (
	"regexp"
	"strings"
)

// invalidFilenameRe matches characters that can't appear in Windows
// filenames, plus the dagger footnote markers Wikipedia uses on episode
// tables to flag extended and double episodes.
var invalidFilenameRe = regexp.MustCompile("[/\\\\:*?\"<>|†‡]")

// Sanitize strips characters that are invalid in filenames.
func Sanitize(name string) string {
	return invalidFilenameRe.ReplaceAllString(name, "")
}

// CapWords capitalises every word in the text, where words are substrings
// delimited by any of the separator strings.
func CapWords(text string, seps []string) string {
	for _, sep := range seps {
		words := strings.Split(text, sep)
		for i, w := range words {
			if w == "" {
				continue
			}
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
		text = strings.Join(words, sep)
	}
	return text
}
