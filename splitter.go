package frusta

import (
	"github.com/tsawler/frusta/chunker"
	"github.com/tsawler/frusta/ingest"
	"github.com/tsawler/frusta/sanitize"
)

// Splitter provides a fluent interface for chunking a single document.
// Each configuration method returns a new Splitter instance, making it
// safe for concurrent use and allowing method chaining.
type Splitter struct {
	// Source
	filename string
	text     string
	loaded   bool

	// Configuration
	options splitOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Splitter with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (s *Splitter) clone() *Splitter {
	return &Splitter{
		filename: s.filename,
		text:     s.text,
		loaded:   s.loaded,
		options:  s.options.clone(),
		err:      s.err,
	}
}

// MaxSize sets the target maximum chunk size in runes. Only an atomic
// span with no interior breakpoint can exceed it. Values below 1 restore
// the default of 600.
func (s *Splitter) MaxSize(n int) *Splitter {
	newSplitter := s.clone()
	newSplitter.options.maxSize = n
	return newSplitter
}

// MinSize sets the size below which a prose chunk is merged with a
// neighbor when a legal partner exists. Values below 1 restore the
// default of min(200, MaxSize/2).
func (s *Splitter) MinSize(n int) *Splitter {
	newSplitter := s.clone()
	newSplitter.options.minSize = n
	return newSplitter
}

// HeadingSplit controls whether prose is split at markdown heading
// boundaries so each heading starts its own chunk. Enabled by default.
func (s *Splitter) HeadingSplit(enabled bool) *Splitter {
	newSplitter := s.clone()
	newSplitter.options.headingSplit = enabled
	return newSplitter
}

// Breakpoint sets the strategy used to choose the cut offset for
// oversized prose spans. A nil strategy restores the default heuristic.
func (s *Splitter) Breakpoint(fn chunker.BreakpointFunc) *Splitter {
	newSplitter := s.clone()
	newSplitter.options.breakpoint = fn
	return newSplitter
}

// load returns the document text, extracting it from the file source on
// first use.
func (s *Splitter) load() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.loaded {
		return s.text, nil
	}

	text, err := ingest.File(s.filename)
	if err != nil {
		return "", err
	}
	return text, nil
}

// Text is a terminal operation that returns the sanitized document text
// without chunking it.
func (s *Splitter) Text() (string, error) {
	text, err := s.load()
	if err != nil {
		return "", err
	}
	return sanitize.Normalize(text), nil
}

// Chunks is a terminal operation that runs the full pipeline and returns
// the ordered chunks with their structural kinds.
func (s *Splitter) Chunks() ([]chunker.Chunk, error) {
	text, err := s.load()
	if err != nil {
		return nil, err
	}
	return s.chunker().SplitChunks(text), nil
}

// Strings is a terminal operation like Chunks that returns just the chunk
// contents.
func (s *Splitter) Strings() ([]string, error) {
	text, err := s.load()
	if err != nil {
		return nil, err
	}
	return s.chunker().Split(text), nil
}

// FixedSize is a terminal operation that splits the document into
// fixed-size windows with the given overlap, ignoring structure. The
// configured chunking options do not apply.
func (s *Splitter) FixedSize(size, overlap int) ([]string, error) {
	text, err := s.load()
	if err != nil {
		return nil, err
	}
	return chunker.FixedSize(text, size, overlap), nil
}

func (s *Splitter) chunker() *chunker.Chunker {
	return chunker.NewWithConfig(chunker.Config{
		MaxSize:      s.options.maxSize,
		MinSize:      s.options.minSize,
		HeadingSplit: s.options.headingSplit,
		Breakpoint:   s.options.breakpoint,
	})
}
