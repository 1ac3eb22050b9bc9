package markdown

import (
	"regexp"
	"strings"
)

var (
	headingLine  = regexp.MustCompile(`^#{1,6}\s`)
	imageLine    = regexp.MustCompile(`^!\[`)
	listItemLine = regexp.MustCompile(`^(-\s|\d+\.\s)`)
)

// Postprocess normalizes rendered markdown: runs of blank lines collapse
// to one, heading and image lines are set off by a blank line on both
// sides, a list run is followed by a blank line before any other content,
// and leading and trailing blank lines are removed.
//
// The pass is line-based and idempotent: Postprocess(Postprocess(s)) ==
// Postprocess(s) for every input.
func Postprocess(s string) string {
	var out []string

	blank := func() {
		if len(out) > 0 && out[len(out)-1] != "" {
			out = append(out, "")
		}
	}

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t")

		switch {
		case line == "":
			blank()
		case headingLine.MatchString(line) || imageLine.MatchString(line):
			blank()
			out = append(out, line, "")
		case listItemLine.MatchString(line):
			out = append(out, line)
		default:
			// Other content directly after a list item gets separated so
			// it is not swallowed into the list.
			if len(out) > 0 && listItemLine.MatchString(out[len(out)-1]) {
				out = append(out, "")
			}
			out = append(out, line)
		}
	}

	// Drop the leading and trailing blanks the rules above may leave.
	start, end := 0, len(out)
	for start < end && out[start] == "" {
		start++
	}
	for end > start && out[end-1] == "" {
		end--
	}

	return strings.Join(out[start:end], "\n")
}
