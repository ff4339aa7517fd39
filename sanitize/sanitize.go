package sanitize

import (
	"regexp"
	"strings"
)

// literalNewlineThreshold is the minimum number of literal backslash-n
// sequences required before they are converted into real newlines. Below the
// threshold the text is left untouched: one or two occurrences usually means
// quoted code rather than an escaped document.
const literalNewlineThreshold = 3

var (
	// Math wrappers: keep the inner text, drop the delimiters.
	inlineMathRe  = regexp.MustCompile(`\$\s*([^$]*?)\s*\$`)
	parenMathRe   = regexp.MustCompile(`\\\(\s*([\s\S]*?)\s*\\\)`)
	bracketMathRe = regexp.MustCompile(`\\\[\s*([\s\S]*?)\s*\\\]`)

	// Stray backslash before punctuation collapses to the punctuation alone.
	escapedPunctRe = regexp.MustCompile(`\\(['"(){}\[\]?:;,.!%\-])`)

	// "7 %" and "20\n\n%" normalize to "7%" and "20%".
	digitSpacePctRe   = regexp.MustCompile(`(\d)\s+%`)
	digitNewlinePctRe = regexp.MustCompile(`(\d)\s*\n+\s*%`)

	// Whitespace hugging punctuation.
	spaceBeforeCloseRe = regexp.MustCompile(`\s+([,;:.!?)])`)
	spaceAfterOpenRe   = regexp.MustCompile(`([(\[])\s+`)

	// Clean: space/tab runs and excess blank lines.
	spaceRunRe = regexp.MustCompile(`[ \t]+`)
	blankRunRe = regexp.MustCompile(`\n{3,}`)

	// Common LaTeX-style escapes that survive PDF/OCR extraction.
	escapeReplacer = strings.NewReplacer(
		`\%`, "%",
		`\_`, "_",
		`\#`, "#",
		`\&`, "&",
		`\$`, "$",
	)
)

// Sanitize removes LaTeX and escape noise from extracted text while
// preserving Markdown structure such as pipe tables and headings.
// It is pure and idempotent, and returns "" for empty input.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	// Literal "\n" sequences become real newlines, but only when there are
	// enough of them to indicate an escaped document.
	if strings.Count(text, `\n`) >= literalNewlineThreshold {
		text = strings.ReplaceAll(text, `\n`, "\n")
	}

	text = escapeReplacer.Replace(text)

	text = inlineMathRe.ReplaceAllString(text, "$1")
	text = parenMathRe.ReplaceAllString(text, "$1")
	text = bracketMathRe.ReplaceAllString(text, "$1")

	text = escapedPunctRe.ReplaceAllString(text, "$1")

	text = digitSpacePctRe.ReplaceAllString(text, "${1}%")
	text = digitNewlinePctRe.ReplaceAllString(text, "${1}%")

	text = spaceBeforeCloseRe.ReplaceAllString(text, "$1")
	text = spaceAfterOpenRe.ReplaceAllString(text, "$1")

	return text
}

// Clean collapses runs of spaces and tabs to a single space, caps runs of
// three or more newlines at two, and trims surrounding whitespace.
// It is idempotent and composes after Sanitize.
func Clean(text string) string {
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Normalize applies Sanitize followed by Clean.
func Normalize(text string) string {
	return Clean(Sanitize(text))
}
