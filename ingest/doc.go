// Package ingest extracts raw text from the source formats the chunking
// pipeline accepts: plain text and Markdown in any common encoding, CSV,
// HTML, and images via OCR.
//
// Each extractor returns decoded UTF-8 text ready for the chunker; none of
// them chunk. Structured inputs are rendered in a Markdown-compatible way so
// the chunker's structural guarantees carry through: CSV files become pipe
// tables (and so stay atomic), HTML headings become ATX headings (and so
// start their own chunks).
//
// Extraction is the only place in the module that touches I/O. Errors here
// are real I/O or format errors; malformed text content never fails, it is
// decoded with replacement characters.
package ingest
