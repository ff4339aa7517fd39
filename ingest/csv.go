package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSV reads comma-separated values and renders them as a Markdown pipe
// table: header row, delimiter row, then data rows. Rendering as a pipe
// table means the chunker treats the whole file as one atomic table chunk.
// Ragged rows are tolerated; an empty input yields an empty string.
func CSV(r io.Reader) (string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	var sb strings.Builder
	writeRow(&sb, records[0])

	sb.WriteString("|")
	for range records[0] {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for _, record := range records[1:] {
		writeRow(&sb, record)
	}

	return strings.TrimSpace(sb.String()), nil
}

// CSVHeader reads just the column names from a CSV stream.
func CSVHeader(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	return header, nil
}

// writeRow emits one pipe-table row. Cell content that would break the row
// structure (pipes, newlines) is neutralized.
func writeRow(sb *strings.Builder, record []string) {
	sb.WriteString("|")
	for _, cell := range record {
		sb.WriteString(" ")
		sb.WriteString(cleanCell(cell))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

func cleanCell(cell string) string {
	cell = strings.ReplaceAll(cell, "\r\n", " ")
	cell = strings.ReplaceAll(cell, "\n", " ")
	cell = strings.ReplaceAll(cell, "|", `\|`)
	return strings.TrimSpace(cell)
}
