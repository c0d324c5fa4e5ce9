package keyword

import (
	"regexp"
	"strings"
)

var (
	hashtagRegex = regexp.MustCompile(`#\w+`)
	mentionRegex = regexp.MustCompile(`@\w{1,15}\b`)
)

// Extracts hashtag bodies ("#Go" yields "go") from post text, case-folded, in
// order of occurrence. Repeated tags are repeated in the output so callers can
// count occurrences.
func ExtractHashtags(text string) []string {
	matches := hashtagRegex.FindAllString(text, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.ToLower(strings.TrimPrefix(m, "#")))
	}
	return tags
}

// Extracts candidate mention names ("@alice" yields "alice") from post text,
// in order of occurrence. Names are returned verbatim; the caller decides
// whether they identify a registered user.
func ExtractMentions(text string) []string {
	matches := mentionRegex.FindAllString(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimPrefix(m, "@"))
	}
	return names
}
