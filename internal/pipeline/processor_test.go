package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/sheetsplit/internal/config"
	"github.com/dgallion1/sheetsplit/internal/writer"
)

const sampleDoc = `INTRODUCTION
This part is a low-power widget.

1.1 Register Map
REG0 controls the widget.

Package Dimensions
5mm x 5mm QFN.
`

func testProcessor(t *testing.T) (*Processor, string) {
	t.Helper()
	out := t.TempDir()
	cfg := config.Config{OutputDir: out}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProcessor(cfg, writer.Disk{}, log), out
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcess(t *testing.T) {
	p, out := testProcessor(t)
	doc := writeDoc(t, "widget.txt", sampleDoc)

	res := p.Process(context.Background(), doc, -1)

	if res.Empty() {
		t.Fatal("expected a populated result")
	}
	if res.TotalPages != 1 || res.PagesProcessed != 1 {
		t.Errorf("pages = %d/%d, want 1/1", res.PagesProcessed, res.TotalPages)
	}
	if res.HeadersFound != 3 {
		t.Errorf("HeadersFound = %d, want 3 (%v)", res.HeadersFound, res.Headers)
	}
	if res.ContentChunks != 4 {
		t.Errorf("ContentChunks = %d, want 4", res.ContentChunks)
	}

	// Files land under <output>/<stem>/<category>/.
	data, err := os.ReadFile(filepath.Join(out, "widget", "registers", "register_map.md"))
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if !strings.Contains(string(data), "REG0 controls the widget.") {
		t.Errorf("unexpected file content: %q", data)
	}
	if _, err := os.Stat(filepath.Join(out, "widget", "README.md")); err != nil {
		t.Errorf("expected index file: %v", err)
	}
}

func TestProcessMissingFile(t *testing.T) {
	p, _ := testProcessor(t)

	res := p.Process(context.Background(), "/nonexistent/doc.txt", -1)
	if !res.Empty() {
		t.Errorf("expected empty result for missing file, got %+v", res)
	}
}

func TestProcessUnsupportedExtension(t *testing.T) {
	p, _ := testProcessor(t)
	doc := writeDoc(t, "doc.xlsx", "data")

	res := p.Process(context.Background(), doc, -1)
	if !res.Empty() {
		t.Errorf("expected empty result for unsupported file, got %+v", res)
	}
}

func TestExtractPageMarkers(t *testing.T) {
	p, _ := testProcessor(t)
	doc := writeDoc(t, "doc.txt", "OVERVIEW\nbody\n")

	ext, err := p.Extract(context.Background(), doc, -1)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.HasPrefix(ext.FullText, "\n--- PAGE 1 ---\n") {
		t.Errorf("expected page marker, got %q", ext.FullText)
	}
	if len(ext.Headers) != 1 || ext.Headers[0] != "OVERVIEW" {
		t.Errorf("Headers = %v, want [OVERVIEW]", ext.Headers)
	}
}

func TestExtractMaxPagesZero(t *testing.T) {
	p, _ := testProcessor(t)
	doc := writeDoc(t, "doc.txt", "OVERVIEW\nbody\n")

	ext, err := p.Extract(context.Background(), doc, 0)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if ext.TotalPages != 1 || ext.PagesProcessed != 0 {
		t.Errorf("pages = %d/%d, want 0/1", ext.PagesProcessed, ext.TotalPages)
	}
	if ext.FullText != "" || len(ext.Headers) != 0 {
		t.Errorf("expected no content with a zero page limit, got %q / %v", ext.FullText, ext.Headers)
	}
}

func TestWriteArtifact(t *testing.T) {
	p, out := testProcessor(t)

	if err := p.WriteArtifact("widget", SuggestedStructureFile, `{"ok":true}`); err != nil {
		t.Fatalf("WriteArtifact: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(out, "widget", SuggestedStructureFile))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("artifact content = %q", data)
	}
}

func TestDocStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/uploads/widget.pdf", "widget"},
		{"datasheet.txt", "datasheet"},
		{"noext", "noext"},
		{"/a/b/part.rev2.pdf", "part.rev2"},
	}
	for _, tt := range tests {
		if got := DocStem(tt.path); got != tt.want {
			t.Errorf("DocStem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
