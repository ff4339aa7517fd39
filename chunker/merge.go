package chunker

import (
	"unicode/utf8"

	"github.com/tsawler/frusta/markdown"
)

// chunkSeparator joins the contents of two merged prose chunks.
const chunkSeparator = "\n\n"

// mergeUndersized coalesces undersized prose chunks with a neighbor in a
// single forward pass. A chunk below minSize first tries to absorb its
// successor, then to be absorbed by its predecessor; either merge is legal
// only when both sides are prose and the combined size fits within mergePad.
// Tables are never merge partners. A chunk with no legal partner stays
// undersized: that is accepted output, not an error. Chunks are only ever
// concatenated here, never split, so merging preserves source order.
func mergeUndersized(chunks []Chunk, minSize, mergePad int) []Chunk {
	i := 0
	for i < len(chunks) {
		cur := chunks[i]

		if cur.Kind == markdown.Table || utf8.RuneCountInString(cur.Content) >= minSize {
			i++
			continue
		}

		curLen := utf8.RuneCountInString(cur.Content)

		// Forward merge: absorb the next chunk and re-evaluate at i, since
		// the merged chunk may still be undersized.
		if i+1 < len(chunks) && chunks[i+1].Kind != markdown.Table {
			nextLen := utf8.RuneCountInString(chunks[i+1].Content)
			if curLen+nextLen <= mergePad {
				chunks[i].Content = cur.Content + chunkSeparator + chunks[i+1].Content
				chunks = append(chunks[:i+1], chunks[i+2:]...)
				continue
			}
		}

		// Backward merge: append onto the previous chunk and re-evaluate
		// there.
		if i > 0 && chunks[i-1].Kind != markdown.Table {
			prevLen := utf8.RuneCountInString(chunks[i-1].Content)
			if prevLen+curLen <= mergePad {
				chunks[i-1].Content += chunkSeparator + cur.Content
				chunks = append(chunks[:i], chunks[i+1:]...)
				i--
				continue
			}
		}

		// Blocked by table neighbors or size: leave it undersized.
		i++
	}
	return chunks
}
