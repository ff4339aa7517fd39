package markdown

import (
	"regexp"
	"strings"
)

// BlockKind identifies the structural classification of a block.
type BlockKind int

const (
	// Prose is ordinary text: paragraphs, headings, lists, anything that is
	// not part of a pipe table.
	Prose BlockKind = iota
	// Table is a maximal run of pipe-table lines.
	Table
)

// String returns a human-readable representation of the block kind.
func (k BlockKind) String() string {
	switch k {
	case Prose:
		return "prose"
	case Table:
		return "table"
	default:
		return "unknown"
	}
}

// Block is a maximal contiguous run of lines sharing one classification.
// Blocks are transient: they exist only between splitting and chunk assembly.
type Block struct {
	// Content is the trimmed text of the run.
	Content string

	// Kind is the classification shared by every line in the run.
	Kind BlockKind
}

var (
	// A pipe table row: optional leading whitespace, a pipe, content, a pipe,
	// optional trailing whitespace.
	tableRowRe = regexp.MustCompile(`^\s*\|.*\|\s*$`)

	// A delimiter row such as |:---|:---:|---:| with optional outer pipes.
	tableDelimiterRe = regexp.MustCompile(`^\s*\|?\s*:?-+:?\s*(\|\s*:?-+:?\s*)+\|?\s*$`)
)

// IsTableLine reports whether a single line belongs to a Markdown pipe table,
// either as a cell row or as a delimiter row. Lines that match neither
// pattern are prose; ambiguous content fails open toward prose.
func IsTableLine(line string) bool {
	return tableRowRe.MatchString(line) || tableDelimiterRe.MatchString(line)
}

// SplitBlocks partitions text into maximal runs of same-kind lines. Every
// line, blank lines included, lands in exactly one run; a run is flushed as
// a Block whenever the next line classifies differently. Blocks whose
// trimmed content is empty are dropped. The relative order of all non-blank
// source lines is preserved across the returned blocks.
func SplitBlocks(text string) []Block {
	lines := strings.Split(text, "\n")

	var blocks []Block
	var buffer []string
	inTable := false

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		content := strings.TrimSpace(strings.Join(buffer, "\n"))
		if content != "" {
			kind := Prose
			if inTable {
				kind = Table
			}
			blocks = append(blocks, Block{Content: content, Kind: kind})
		}
		buffer = buffer[:0]
	}

	for _, line := range lines {
		if IsTableLine(line) {
			if !inTable {
				flush()
				inTable = true
			}
		} else if inTable {
			flush()
			inTable = false
		}
		buffer = append(buffer, line)
	}
	flush()

	return blocks
}
