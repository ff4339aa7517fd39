package ingest

import (
	"strings"
	"testing"

	"github.com/tsawler/frusta/markdown"
)

func TestCSV_RendersPipeTable(t *testing.T) {
	input := "name,age\nalice,30\nbob,25\n"

	got, err := CSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	want := "| name | age |\n|---|---|\n| alice | 30 |\n| bob | 25 |"
	if got != want {
		t.Errorf("CSV() =\n%q\nwant\n%q", got, want)
	}
}

func TestCSV_EveryLineIsATableLine(t *testing.T) {
	input := "a,b,c\n1,2,3\n4,5,6\n"

	got, err := CSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	for _, line := range strings.Split(got, "\n") {
		if !markdown.IsTableLine(line) {
			t.Errorf("rendered line %q is not a table line; the chunker would split the file", line)
		}
	}
}

func TestCSV_Empty(t *testing.T) {
	got, err := CSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}
	if got != "" {
		t.Errorf("CSV(\"\") = %q, want \"\"", got)
	}
}

func TestCSV_HeaderOnly(t *testing.T) {
	got, err := CSV(strings.NewReader("col1,col2\n"))
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}
	want := "| col1 | col2 |\n|---|---|"
	if got != want {
		t.Errorf("CSV() = %q, want %q", got, want)
	}
}

func TestCSV_NeutralizesCellPipesAndNewlines(t *testing.T) {
	input := "col\n\"line one\nline two\"\n\"a|b\"\n"

	got, err := CSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	for _, line := range strings.Split(got, "\n") {
		if !markdown.IsTableLine(line) {
			t.Errorf("line %q broke the table structure", line)
		}
	}
	if !strings.Contains(got, "line one line two") {
		t.Errorf("embedded newline not flattened: %q", got)
	}
}

func TestCSV_RaggedRows(t *testing.T) {
	input := "a,b,c\n1,2\n3,4,5,6\n"

	got, err := CSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}
	if !strings.Contains(got, "| 1 | 2 |") || !strings.Contains(got, "| 3 | 4 | 5 | 6 |") {
		t.Errorf("ragged rows mishandled: %q", got)
	}
}

func TestCSVHeader(t *testing.T) {
	header, err := CSVHeader(strings.NewReader("name,age,city\nalice,30,york\n"))
	if err != nil {
		t.Fatalf("CSVHeader() error = %v", err)
	}
	want := []string{"name", "age", "city"}
	if len(header) != len(want) {
		t.Fatalf("CSVHeader() = %#v, want %#v", header, want)
	}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, header[i], want[i])
		}
	}
}

func TestCSVHeader_Empty(t *testing.T) {
	header, err := CSVHeader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("CSVHeader() error = %v", err)
	}
	if header != nil {
		t.Errorf("CSVHeader(\"\") = %#v, want nil", header)
	}
}
