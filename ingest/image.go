package ingest

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/frusta/ocr"
)

// Image extracts text from image data via OCR. The image header is decoded
// first so obviously broken uploads fail with a format error instead of an
// opaque OCR failure. Requires the module to be built with the "ocr" tag;
// otherwise the error wraps ocr.ErrOCRNotEnabled.
func Image(data []byte) (string, error) {
	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()

	return ImageWithClient(data, client)
}

// ImageWithClient is like Image but uses a caller-owned OCR client, so a
// single Tesseract instance can be reused across many images and tests can
// substitute a configured client.
func ImageWithClient(data []byte, client *ocr.Client) (string, error) {
	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image header: %w", err)
	}
	if config.Width <= 0 || config.Height <= 0 {
		return "", fmt.Errorf("image has no pixels (%s %dx%d)", format, config.Width, config.Height)
	}

	text, err := client.RecognizeImage(data)
	if err != nil {
		return "", fmt.Errorf("recognizing %s image: %w", format, err)
	}
	return text, nil
}
