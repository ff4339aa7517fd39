package ingest

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tsawler/frusta/format"
)

// File reads a file and extracts its text. The format is determined from
// the filename extension, falling back to magic-byte sniffing; inputs that
// look like neither a known binary format nor HTML are treated as text.
func File(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}

	f := format.Detect(filename)
	if f == format.Unknown {
		f = format.DetectFromMagic(data)
	}

	return Bytes(data, f)
}

// Bytes extracts text from raw input of a known format. Unknown formats are
// treated as plain text, per the pipeline's fail-open policy; callers that
// need to reject binary junk should do so before ingestion.
func Bytes(data []byte, f format.Format) (string, error) {
	switch {
	case f.IsImage():
		return Image(data)
	case f == format.HTML:
		return HTML(bytes.NewReader(data))
	case f == format.CSV:
		return CSV(bytes.NewReader(data))
	default:
		// Markdown, plain text, and anything unrecognized.
		return DecodeText(data), nil
	}
}
