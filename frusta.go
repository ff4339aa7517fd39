// Package frusta provides a fluent API for splitting documents into
// size-bounded chunks suitable for embedding pipelines.
//
// Basic usage:
//
//	chunks, err := frusta.FromFile("report.md").Chunks()
//	if err != nil {
//	    // handle error
//	}
//	for _, c := range chunks {
//	    fmt.Println(c.Content)
//	}
//
// With options:
//
//	chunks, err := frusta.FromString(text).
//	    MaxSize(400).
//	    HeadingSplit(false).
//	    Chunks()
//
// For advanced use cases, the lower-level chunker, sanitize, markdown and
// ingest packages are also available.
package frusta

import (
	"io"

	"github.com/tsawler/frusta/format"
	"github.com/tsawler/frusta/ingest"
)

// FromString creates a Splitter over document text that is already in
// memory. The text is sanitized and chunked when a terminal operation
// such as Chunks is called.
//
// Example:
//
//	chunks, err := frusta.FromString(text).Chunks()
func FromString(text string) *Splitter {
	return &Splitter{
		text:    text,
		loaded:  true,
		options: defaultSplitOptions(),
	}
}

// FromFile creates a Splitter over a file. The file is read and its text
// extracted lazily, when a terminal operation is called; the format is
// determined from the extension, falling back to content sniffing.
// Markdown, plain text, CSV, HTML, and (with the "ocr" build tag) image
// formats are supported.
//
// Example:
//
//	chunks, err := frusta.FromFile("report.csv").Chunks()
func FromFile(filename string) *Splitter {
	return &Splitter{
		filename: filename,
		options:  defaultSplitOptions(),
	}
}

// FromBytes creates a Splitter over raw document data of a known format.
// Extraction happens immediately; any extraction error surfaces from the
// terminal operation.
func FromBytes(data []byte, f format.Format) *Splitter {
	text, err := ingest.Bytes(data, f)
	return &Splitter{
		text:    text,
		loaded:  true,
		err:     err,
		options: defaultSplitOptions(),
	}
}

// FromReader creates a Splitter over a stream of document text. The stream
// is consumed immediately and decoded to UTF-8; use FromBytes with an
// explicit format for CSV or HTML input.
func FromReader(r io.Reader) *Splitter {
	text, err := ingest.Text(r)
	return &Splitter{
		text:    text,
		loaded:  true,
		err:     err,
		options: defaultSplitOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	chunks := frusta.Must(frusta.FromFile("notes.md").Chunks())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
