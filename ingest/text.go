package ingest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Text reads r and decodes it into UTF-8 text. See DecodeText.
func Text(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return DecodeText(data), nil
}

// DecodeText converts raw bytes into UTF-8 text. UTF-16 input is recognized
// by its byte order mark; anything else goes through charset sniffing with
// UTF-8 as the fallback. Undecodable bytes become replacement characters
// rather than errors: malformed text is the chunker's normal diet.
func DecodeText(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	if enc, ok := utf16Encoding(data); ok {
		decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
		if err == nil {
			return strings.ToValidUTF8(string(decoded), "�")
		}
		// Fall through to sniffing on a broken UTF-16 stream.
	}

	cr, err := charset.NewReader(bytes.NewReader(data), "")
	if err == nil {
		if decoded, err := io.ReadAll(cr); err == nil {
			return strings.ToValidUTF8(string(decoded), "�")
		}
	}

	return strings.ToValidUTF8(string(data), "�")
}

// utf16Encoding returns the UTF-16 encoding indicated by a byte order mark,
// if one is present.
func utf16Encoding(data []byte) (encoding.Encoding, bool) {
	if len(data) < 2 {
		return nil, false
	}
	switch {
	case data[0] == 0xFE && data[1] == 0xFF:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), true
	case data[0] == 0xFF && data[1] == 0xFE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), true
	default:
		return nil, false
	}
}
