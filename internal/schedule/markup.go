package schedule

import (
	"regexp"
	"strings"
)

var markupTag = regexp.MustCompile(`<[^>]+>`)

// StripMarkup removes <tag>-style substrings, decodes the small set of
// entities the station actually emits, and normalizes whitespace.
//
// Entity decoding runs as sequential replaces in this exact order; keep it
// that way, the station's rendering depends on it.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}

	s = markupTag.ReplaceAllString(s, "")

	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&nbsp;", " ")

	return strings.Join(strings.Fields(s), " ")
}
