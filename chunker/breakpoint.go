package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// BreakpointFunc selects where to cut an oversized prose span. It receives a
// bounded text window and the maximum permitted offset, and returns an offset
// in [0, maxChars] measured in runes. Implementations must not panic; those
// that wrap fallible calls (remote services, models) should fall back to
// [HeuristicBreakpoint] on failure.
type BreakpointFunc func(window string, maxChars int) int

var sentenceEndRe = regexp.MustCompile(`[.!?]\s+`)

// HeuristicBreakpoint is the default breakpoint strategy. It returns the
// offset just past the last sentence-ending punctuation run in the window,
// or failing that, just past the last paragraph break, or failing that,
// maxChars unchanged.
func HeuristicBreakpoint(window string, maxChars int) int {
	runes := []rune(window)
	if maxChars < len(runes) {
		runes = runes[:maxChars]
	}
	w := string(runes)

	if locs := sentenceEndRe.FindAllStringIndex(w, -1); len(locs) > 0 {
		return utf8.RuneCountInString(w[:locs[len(locs)-1][1]])
	}

	if i := strings.LastIndex(w, "\n\n"); i >= 0 {
		return utf8.RuneCountInString(w[:i]) + 2
	}

	return maxChars
}

// safeBreakpoint invokes a breakpoint strategy with the fail-open guards the
// builder relies on: a panic, a non-positive offset, or an offset past
// maxChars all degrade to a hard cut at maxChars, which guarantees the
// builder's cursor advances.
func safeBreakpoint(bp BreakpointFunc, window string, maxChars int) (cut int) {
	defer func() {
		if recover() != nil {
			cut = maxChars
		}
	}()

	cut = bp(window, maxChars)
	if cut <= 0 || cut > maxChars {
		cut = maxChars
	}
	return cut
}
