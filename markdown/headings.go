package markdown

import (
	"regexp"
	"strings"
)

// An ATX heading: one to six '#' characters followed by whitespace.
var headingRe = regexp.MustCompile(`^#{1,6}\s`)

// IsHeadingLine reports whether a line is an ATX heading.
func IsHeadingLine(line string) bool {
	return headingRe.MatchString(line)
}

// SplitHeadings splits text immediately before every ATX heading line, so
// each heading becomes the first line of the section that follows it. A
// heading on the first line starts the first section rather than creating an
// empty one. Each part is trimmed and empty parts are dropped; the relative
// order of parts matches the source.
//
// Callers that want "no heading found" to mean "leave the text alone" should
// check for a single-element result.
func SplitHeadings(text string) []string {
	lines := strings.Split(text, "\n")

	var parts []string
	var buffer []string

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		part := strings.TrimSpace(strings.Join(buffer, "\n"))
		if part != "" {
			parts = append(parts, part)
		}
		buffer = buffer[:0]
	}

	for i, line := range lines {
		if i > 0 && IsHeadingLine(line) {
			flush()
		}
		buffer = append(buffer, line)
	}
	flush()

	return parts
}
