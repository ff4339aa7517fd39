// Package markdown classifies extracted text into structural blocks.
//
// The package works line-by-line rather than building a full CommonMark
// tree: the chunking engine's atomicity guarantees are defined over maximal
// runs of table lines, so classification and splitting must agree on the
// same per-line definition of a table row.
//
// [SplitBlocks] partitions text into maximal runs of same-kind lines
// (prose or table), and [SplitHeadings] divides prose at ATX heading
// boundaries so each heading starts its own section.
package markdown
