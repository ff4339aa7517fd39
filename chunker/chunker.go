package chunker

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/frusta/markdown"
	"github.com/tsawler/frusta/sanitize"
)

const (
	// DefaultMaxSize is the default target maximum chunk size in runes.
	DefaultMaxSize = 600

	// minSizeFloor caps the derived minimum chunk size. The effective
	// minimum is min(minSizeFloor, MaxSize/2) when Config.MinSize is unset.
	minSizeFloor = 200

	// mergePadFactor is the overflow tolerated when merging two undersized
	// neighbors: merges may exceed MaxSize by 5%.
	mergePadFactor = 1.05
)

// Config holds configuration options for the chunker.
type Config struct {
	// MaxSize is the target maximum chunk size in runes.
	// Only an atomic span with no interior breakpoint can exceed it.
	// Default: 600
	MaxSize int

	// MinSize is the size below which a prose chunk is merged with a
	// neighbor when a legal partner exists.
	// Default: min(200, MaxSize/2)
	MinSize int

	// HeadingSplit splits prose blocks at ATX heading boundaries so each
	// heading starts its own chunk.
	// Default: true
	HeadingSplit bool

	// Breakpoint selects the cut offset for oversized prose spans.
	// Default: HeuristicBreakpoint
	Breakpoint BreakpointFunc
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxSize:      DefaultMaxSize,
		HeadingSplit: true,
	}
}

// Chunk is a final output unit: the text handed to the embedding stage,
// tagged with the structural kind it was assembled from.
type Chunk struct {
	// Content is the chunk text.
	Content string

	// Kind records whether the chunk is prose or an atomic table.
	Kind markdown.BlockKind
}

// Chunker splits document text into size-bounded chunks.
type Chunker struct {
	config Config
}

// New creates a chunker with default configuration.
func New() *Chunker {
	return &Chunker{config: DefaultConfig()}
}

// NewWithConfig creates a chunker with custom configuration. Zero-valued
// sizes fall back to their defaults.
func NewWithConfig(config Config) *Chunker {
	return &Chunker{config: config}
}

// Split chunks text and returns the ordered chunk contents. Empty input
// yields no chunks; malformed input never fails.
func (c *Chunker) Split(text string) []string {
	chunks := c.SplitChunks(text)
	if len(chunks) == 0 {
		return nil
	}

	out := make([]string, len(chunks))
	for i, chunk := range chunks {
		out[i] = chunk.Content
	}
	return out
}

// SplitChunks chunks text and returns the ordered chunks with their kinds,
// for callers that treat tables differently downstream.
func (c *Chunker) SplitChunks(text string) []Chunk {
	if text == "" {
		return nil
	}

	maxSize := c.config.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	minSize := c.config.MinSize
	if minSize <= 0 {
		minSize = minSizeFloor
		if half := maxSize / 2; half < minSize {
			minSize = half
		}
	}
	mergePad := int(float64(maxSize) * mergePadFactor)
	bp := c.config.Breakpoint
	if bp == nil {
		bp = HeuristicBreakpoint
	}

	cleaned := sanitize.Normalize(text)
	if cleaned == "" {
		return nil
	}

	blocks := markdown.SplitBlocks(cleaned)
	if c.config.HeadingSplit {
		blocks = splitBlockHeadings(blocks)
	}

	chunks := buildChunks(blocks, maxSize, bp)
	return mergeUndersized(chunks, minSize, mergePad)
}

// splitBlockHeadings further divides prose blocks at heading boundaries.
// Table blocks pass through untouched, as do prose blocks where splitting
// yields a single part.
func splitBlockHeadings(blocks []markdown.Block) []markdown.Block {
	out := make([]markdown.Block, 0, len(blocks))
	for _, block := range blocks {
		if block.Kind == markdown.Table {
			out = append(out, block)
			continue
		}

		parts := markdown.SplitHeadings(block.Content)
		if len(parts) <= 1 {
			out = append(out, block)
			continue
		}
		for _, part := range parts {
			out = append(out, markdown.Block{Content: part, Kind: markdown.Prose})
		}
	}
	return out
}

// buildChunks converts blocks into size-bounded chunks. Tables become one
// chunk each regardless of size; prose over maxSize is cut at breakpoints.
func buildChunks(blocks []markdown.Block, maxSize int, bp BreakpointFunc) []Chunk {
	var chunks []Chunk

	for _, block := range blocks {
		content := strings.TrimSpace(block.Content)
		if content == "" {
			continue
		}

		if block.Kind == markdown.Table {
			chunks = append(chunks, Chunk{Content: content, Kind: markdown.Table})
			continue
		}

		if utf8.RuneCountInString(content) <= maxSize {
			chunks = append(chunks, Chunk{Content: content, Kind: markdown.Prose})
			continue
		}

		chunks = append(chunks, splitProse(content, maxSize, bp)...)
	}

	return chunks
}

// splitProse cuts an oversized prose span into chunks at breakpoints chosen
// by the strategy. safeBreakpoint guarantees each cut advances the cursor,
// so the loop terminates for any input and any strategy.
func splitProse(text string, maxSize int, bp BreakpointFunc) []Chunk {
	var chunks []Chunk
	remaining := []rune(text)

	for len(remaining) > 0 {
		if len(remaining) <= maxSize {
			chunks = append(chunks, Chunk{Content: string(remaining), Kind: markdown.Prose})
			break
		}

		window := string(remaining[:maxSize])
		cut := safeBreakpoint(bp, window, maxSize)

		piece := strings.TrimSpace(string(remaining[:cut]))
		if piece != "" {
			chunks = append(chunks, Chunk{Content: piece, Kind: markdown.Prose})
		}

		remaining = []rune(strings.TrimSpace(string(remaining[cut:])))
	}

	return chunks
}

// FixedSize splits text into fixed-size windows with optional overlap. It
// ignores document structure entirely and exists for callers that want the
// simple legacy behavior; Chunker.Split is the structure-aware path.
func FixedSize(text string, size, overlap int) []string {
	if text == "" || size <= 0 {
		return nil
	}

	text = strings.ReplaceAll(text, "\r", "")
	runes := []rune(text)

	step := size - overlap
	if step < 1 {
		step = size
	}

	var out []string
	for i := 0; i < len(runes); i += step {
		end := i + size
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[i:end]))
	}
	return out
}
