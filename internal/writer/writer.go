// Package writer persists a document's directory structure to storage.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgallion1/sheetsplit/internal/doctree"
)

// Writer is the persistence boundary. RemoveAll exists so a rerun for the
// same document overwrites prior output instead of appending to it.
type Writer interface {
	EnsureDir(path string) error
	WriteFile(path string, content string) error
	RemoveAll(path string) error
}

// Disk writes to the local filesystem.
type Disk struct{}

func (Disk) EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (Disk) WriteFile(path string, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func (Disk) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// WriteStructure persists one file per record at
// <outputRoot>/<docStem>/<category>/<filename>, plus a README.md index at
// the document root. Any previous output for the document is removed first.
func WriteStructure(w Writer, outputRoot, docStem string, s doctree.Structure) error {
	baseDir := filepath.Join(outputRoot, docStem)
	if err := w.RemoveAll(baseDir); err != nil {
		return fmt.Errorf("clear previous output: %w", err)
	}
	if err := w.EnsureDir(baseDir); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, g := range s.Categories {
		catDir := filepath.Join(baseDir, string(g.Name))
		if err := w.EnsureDir(catDir); err != nil {
			return fmt.Errorf("create category dir %s: %w", g.Name, err)
		}
		for _, f := range g.Files {
			path := filepath.Join(catDir, f.Filename)
			content := "# " + f.Header + "\n\n" + f.Content
			if err := w.WriteFile(path, content); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
		}
	}

	index := filepath.Join(baseDir, "README.md")
	if err := w.WriteFile(index, doctree.RenderIndex(s)); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}
