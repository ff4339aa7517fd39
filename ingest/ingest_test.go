package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/frusta/format"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestFile_Markdown(t *testing.T) {
	content := "# Title\n\nBody text."
	path := writeTempFile(t, "doc.md", content)

	got, err := File(path)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if got != content {
		t.Errorf("File() = %q, want %q", got, content)
	}
}

func TestFile_CSV(t *testing.T) {
	path := writeTempFile(t, "data.csv", "a,b\n1,2\n")

	got, err := File(path)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if !strings.Contains(got, "| a | b |") {
		t.Errorf("CSV not rendered as pipe table: %q", got)
	}
}

func TestFile_SniffsHTMLWithoutExtension(t *testing.T) {
	path := writeTempFile(t, "page.data", "<html><body><p>sniffed content</p></body></html>")

	got, err := File(path)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if !strings.Contains(got, "sniffed content") {
		t.Errorf("HTML not extracted: %q", got)
	}
}

func TestFile_Missing(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBytes_UnknownTreatedAsText(t *testing.T) {
	got, err := Bytes([]byte("some opaque text"), format.Unknown)
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if got != "some opaque text" {
		t.Errorf("Bytes() = %q", got)
	}
}

func TestBytes_HTML(t *testing.T) {
	got, err := Bytes([]byte("<html><body><h2>Hi</h2></body></html>"), format.HTML)
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if !strings.Contains(got, "## Hi") {
		t.Errorf("Bytes() = %q, want heading output", got)
	}
}
