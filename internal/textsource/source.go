// Package textsource provides per-page plain text extraction from documents.
package textsource

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Source is an open document handle yielding plain text per page.
// Pages are 1-based. PageText returns false when a page yields no text;
// callers skip such pages and continue.
type Source interface {
	PageCount() int
	PageText(page int) (string, bool)
	Close() error
}

// Options controls extraction behavior.
type Options struct {
	// FallbackPdftotext enables the pdftotext exec fallback when the Go
	// PDF library cannot read a file.
	FallbackPdftotext bool
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".docx": true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Open returns a Source for the document at path, selected by extension.
func Open(path string, opts Options) (Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return openPDF(path, opts)
	case ".txt":
		return openText(path)
	case ".md", ".markdown":
		return openMarkdown(path)
	case ".html", ".htm":
		return openHTML(path)
	case ".docx":
		return openDOCX(path)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// memSource is a Source over already-extracted page strings. Non-PDF
// formats have no page concept and present as a single page.
type memSource struct {
	pages []string
}

func (m *memSource) PageCount() int { return len(m.pages) }

func (m *memSource) PageText(page int) (string, bool) {
	if page < 1 || page > len(m.pages) {
		return "", false
	}
	text := m.pages[page-1]
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

func (m *memSource) Close() error { return nil }
