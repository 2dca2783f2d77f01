package tag

import "regexp"

// Markers match as substrings so they can sit inside any comment
// syntax. The name is everything up to the closing bracket, matching
// is case sensitive, and only the leftmost marker on a line counts.
var (
	startPat = regexp.MustCompile(`\[START ([^\]]+)\]`)
	endPat   = regexp.MustCompile(`\[END ([^\]]+)\]`)
)

func matchStart(line string) (string, bool) {
	m := startPat.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func matchEnd(line string) (string, bool) {
	m := endPat.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
