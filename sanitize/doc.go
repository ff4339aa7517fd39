// Package sanitize normalizes escape noise and whitespace in extracted text.
//
// Text arriving from OCR and PDF extraction frequently carries LaTeX-style
// escapes, literal "\n" sequences, and ragged whitespace. [Sanitize] removes
// the escape noise while preserving Markdown structure (including pipe
// tables), and [Clean] collapses whitespace runs. Both functions are pure,
// deterministic, and idempotent, and never fail on malformed input.
//
// The usual composition is [Normalize], which applies Sanitize then Clean:
//
//	text := sanitize.Normalize(raw)
package sanitize
