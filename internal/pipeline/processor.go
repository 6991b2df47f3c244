// Package pipeline orchestrates document processing: text extraction,
// header detection, chunking, classification, and output writing.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/dgallion1/sheetsplit/internal/chunker"
	"github.com/dgallion1/sheetsplit/internal/config"
	"github.com/dgallion1/sheetsplit/internal/doctree"
	"github.com/dgallion1/sheetsplit/internal/headers"
	"github.com/dgallion1/sheetsplit/internal/textsource"
	"github.com/dgallion1/sheetsplit/internal/writer"
)

// Processor runs the splitting pipeline for one document at a time. It has
// no mutable state across invocations; reruns for the same document
// overwrite prior output.
type Processor struct {
	cfg config.Config
	w   writer.Writer
	log *slog.Logger
}

func NewProcessor(cfg config.Config, w writer.Writer, log *slog.Logger) *Processor {
	return &Processor{cfg: cfg, w: w, log: log}
}

// Extraction holds the scan results for one document.
type Extraction struct {
	FullText       string
	Headers        []string // deduplicated, first-seen order
	TotalPages     int
	PagesProcessed int
}

// Result summarizes one processed document.
type Result struct {
	DocumentPath   string            `json:"document_path"`
	TotalPages     int               `json:"total_pages"`
	PagesProcessed int               `json:"pages_processed"`
	HeadersFound   int               `json:"headers_found"`
	ContentChunks  int               `json:"content_chunks"`
	Structure      doctree.Structure `json:"structure"`

	// Headers carries the detected header text for the suggestion path.
	Headers []string `json:"-"`
}

// Empty reports whether the result is the zero value returned on failure.
func (r Result) Empty() bool {
	return r.DocumentPath == ""
}

// Extract pulls per-page text from the document, detects headers on each
// page, and assembles the full document text with page markers. A page
// that yields no text contributes nothing and is not fatal. maxPages < 0
// processes the entire document.
func (p *Processor) Extract(ctx context.Context, documentPath string, maxPages int) (Extraction, error) {
	src, err := textsource.Open(documentPath, textsource.Options{
		FallbackPdftotext: p.cfg.PDFFallbackPdftotext,
	})
	if err != nil {
		return Extraction{}, fmt.Errorf("open document: %w", err)
	}
	defer src.Close()

	total := src.PageCount()
	pages := total
	if maxPages >= 0 && maxPages < total {
		pages = maxPages
	}

	var sb strings.Builder
	var found []string
	for i := 1; i <= pages; i++ {
		text, ok := src.PageText(i)
		if !ok {
			p.log.Warn("page yielded no text", "document", documentPath, "page", i)
			continue
		}
		fmt.Fprintf(&sb, "\n--- PAGE %d ---\n", i)
		sb.WriteString(text)
		found = append(found, headers.Detect(text)...)
	}

	return Extraction{
		FullText:       sb.String(),
		Headers:        headers.Dedupe(found),
		TotalPages:     total,
		PagesProcessed: pages,
	}, nil
}

// Write persists the structure under <output_dir>/<docStem>/.
func (p *Processor) Write(docStem string, s doctree.Structure) error {
	return writer.WriteStructure(p.w, p.cfg.OutputDir, docStem, s)
}

// WriteArtifact persists an extra file (e.g. the AI-suggested structure)
// into a document's output directory.
func (p *Processor) WriteArtifact(docStem, name, content string) error {
	dir := filepath.Join(p.cfg.OutputDir, docStem)
	if err := p.w.EnsureDir(dir); err != nil {
		return err
	}
	return p.w.WriteFile(filepath.Join(dir, name), content)
}

// Process runs the whole pipeline for one document. All failures (missing
// file, unreadable document, write errors, even panics) are logged and
// surfaced as an empty Result; processing one document never crashes the
// host process.
func (p *Processor) Process(ctx context.Context, documentPath string, maxPages int) (res Result) {
	log := p.log.With("document", documentPath)
	defer func() {
		if r := recover(); r != nil {
			log.Error("processing panicked", "panic", r, "stack", string(debug.Stack()))
			res = Result{}
		}
	}()

	if _, err := os.Stat(documentPath); err != nil {
		log.Error("document not found", "error", err)
		return Result{}
	}

	ext, err := p.Extract(ctx, documentPath, maxPages)
	if err != nil {
		log.Error("extraction failed", "error", err)
		return Result{}
	}
	log.Info("extraction complete",
		"pages_processed", ext.PagesProcessed,
		"total_pages", ext.TotalPages,
		"headers", len(ext.Headers),
	)

	chunks := chunker.Split(ext.FullText, ext.Headers)
	structure := doctree.Build(chunks)

	if err := p.Write(DocStem(documentPath), structure); err != nil {
		log.Error("write failed", "error", err)
		return Result{}
	}
	log.Info("document processed", "chunks", len(chunks), "files", structure.FileCount())

	return Result{
		DocumentPath:   documentPath,
		TotalPages:     ext.TotalPages,
		PagesProcessed: ext.PagesProcessed,
		HeadersFound:   len(ext.Headers),
		ContentChunks:  len(chunks),
		Structure:      structure,
		Headers:        ext.Headers,
	}
}

// DocStem returns the document's base name without extension, used as the
// output directory name.
func DocStem(documentPath string) string {
	base := filepath.Base(documentPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
