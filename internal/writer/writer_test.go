package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/sheetsplit/internal/chunker"
	"github.com/dgallion1/sheetsplit/internal/doctree"
)

func sampleStructure() doctree.Structure {
	return doctree.Build([]chunker.Chunk{
		{Header: "Register Map", Content: "bits and fields\n"},
		{Header: "Pin Assignment", Content: "pin 1 is VDD\n"},
	})
}

func TestWriteStructure(t *testing.T) {
	root := t.TempDir()

	if err := WriteStructure(Disk{}, root, "chip", sampleStructure()); err != nil {
		t.Fatalf("WriteStructure: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "chip", "registers", "register_map.md"))
	if err != nil {
		t.Fatalf("read section file: %v", err)
	}
	want := "# Register Map\n\nbits and fields"
	if string(data) != want {
		t.Errorf("section content = %q, want %q", data, want)
	}

	idx, err := os.ReadFile(filepath.Join(root, "chip", "README.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(idx), "- [Pin Assignment](mechanical/pin_assignment.md)") {
		t.Errorf("index missing mechanical link:\n%s", idx)
	}
}

func TestWriteStructureRemovesPreviousOutput(t *testing.T) {
	root := t.TempDir()

	stale := filepath.Join(root, "chip", "general", "old_section.md")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteStructure(Disk{}, root, "chip", sampleStructure()); err != nil {
		t.Fatalf("WriteStructure: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("stale file survived rerun: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "chip", "registers", "register_map.md")); err != nil {
		t.Errorf("expected fresh output after rerun: %v", err)
	}
}

func TestWriteStructureEmpty(t *testing.T) {
	root := t.TempDir()

	if err := WriteStructure(Disk{}, root, "empty", doctree.Structure{}); err != nil {
		t.Fatalf("WriteStructure: %v", err)
	}

	idx, err := os.ReadFile(filepath.Join(root, "empty", "README.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.HasPrefix(string(idx), "# Datasheet Structure\n") {
		t.Errorf("unexpected index content: %q", idx)
	}
}
