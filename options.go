package frusta

import "github.com/tsawler/frusta/chunker"

// splitOptions holds configuration for chunking.
type splitOptions struct {
	// Size bounds (runes)
	maxSize int
	minSize int

	// Structure handling
	headingSplit bool

	// Cut selection for oversized prose
	breakpoint chunker.BreakpointFunc
}

// defaultSplitOptions returns the default chunking options.
func defaultSplitOptions() splitOptions {
	return splitOptions{
		maxSize:      chunker.DefaultMaxSize,
		minSize:      0, // 0 means derive from maxSize
		headingSplit: true,
		breakpoint:   nil, // nil means the built-in heuristic
	}
}

// clone creates a copy of splitOptions.
func (o splitOptions) clone() splitOptions {
	return splitOptions{
		maxSize:      o.maxSize,
		minSize:      o.minSize,
		headingSplit: o.headingSplit,
		breakpoint:   o.breakpoint,
	}
}
