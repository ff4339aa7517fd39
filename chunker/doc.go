// Package chunker converts extracted document text into retrieval-sized
// chunks for embedding-based search.
//
// The pipeline is a pure text transformation: sanitize escape noise, collapse
// whitespace, partition the text into prose and table blocks, optionally
// split prose at heading boundaries, cut oversized prose at semantic
// breakpoints, and merge undersized neighbors.
//
// # Usage
//
//	c := chunker.New()
//	chunks := c.Split(text)
//
// Use [Config] to control sizing and splitting behavior:
//
//	c := chunker.NewWithConfig(chunker.Config{
//	    MaxSize:      600,
//	    MinSize:      200,
//	    HeadingSplit: true,
//	})
//
// # Invariants
//
// Pipe tables are atomic: a table block always becomes exactly one chunk,
// never split and never merged with a neighbor, regardless of size. Prose
// chunks respect MaxSize except where no breakpoint exists inside a window,
// and MinSize except where no legal merge partner exists. Chunk order always
// matches source order, and no content is dropped beyond whitespace collapse.
//
// # Breakpoints
//
// Where an oversized prose span must be cut, a [BreakpointFunc] chooses the
// offset. The default, [HeuristicBreakpoint], prefers the last sentence end
// in the window, then the last paragraph break, then a hard cut. A custom
// strategy (for example one backed by a remote model) can be injected via
// Config.Breakpoint; the builder clamps out-of-range returns and falls back
// to a hard cut, so a failing strategy degrades instead of hanging the loop.
//
// The package holds no cross-call state: independent documents may be
// chunked concurrently without coordination.
package chunker
