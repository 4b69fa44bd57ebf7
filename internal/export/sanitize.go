package export

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Characters with meaning to filesystems or shells; stripped outright.
	unsafeChars = regexp.MustCompile(`[/\\:*?"<>|\x00]`)
)

// Sanitize makes a respondent- or ward-supplied value safe for use in a
// file name: whitespace runs collapse to a single underscore, path
// separators and other unsafe characters are stripped, and ".." sequences
// are removed so a crafted name can never traverse out of the output root.
// An input that sanitizes to nothing becomes "unknown".
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = unsafeChars.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "..", "")
	s = strings.Trim(s, "._")
	if s == "" {
		return "unknown"
	}
	return s
}
