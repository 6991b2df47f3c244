// Package doctree builds the category and file hierarchy from content chunks
// and renders the human-readable index.
package doctree

import (
	"strings"
	"unicode"

	"github.com/dgallion1/sheetsplit/internal/chunker"
	"github.com/dgallion1/sheetsplit/internal/classify"
)

// File is one output file derived from a chunk. Created once, never mutated.
type File struct {
	Filename string `json:"filename"`
	Header   string `json:"header"`
	Content  string `json:"content"`
}

// CategoryGroup is an ordered list of files under one category directory.
type CategoryGroup struct {
	Name  classify.Category `json:"name"`
	Files []File            `json:"files"`
}

// Structure is the output hierarchy. Categories appear in the order they
// are first encountered while scanning chunks; files keep chunk order.
type Structure struct {
	Categories []CategoryGroup `json:"categories"`
}

// Build classifies each chunk and appends its file record to the matching
// category group, creating groups on first use.
func Build(chunks []chunker.Chunk) Structure {
	var s Structure
	index := make(map[classify.Category]int)

	for _, chunk := range chunks {
		cat := classify.Categorize(chunk.Header)
		f := File{
			Filename: classify.Filename(chunk.Header),
			Header:   chunk.Header,
			Content:  strings.TrimSpace(chunk.Content),
		}
		i, ok := index[cat]
		if !ok {
			i = len(s.Categories)
			index[cat] = i
			s.Categories = append(s.Categories, CategoryGroup{Name: cat})
		}
		s.Categories[i].Files = append(s.Categories[i].Files, f)
	}

	return s
}

// FileCount returns the total number of files across all categories.
func (s Structure) FileCount() int {
	n := 0
	for _, g := range s.Categories {
		n += len(g.Files)
	}
	return n
}

// RenderIndex produces the markdown index listing every file as a link
// relative to the document root, grouped under a heading per category.
func RenderIndex(s Structure) string {
	var sb strings.Builder
	sb.WriteString("# Datasheet Structure\n\n")
	sb.WriteString("This document was automatically generated from a PDF datasheet.\n\n")

	for _, g := range s.Categories {
		sb.WriteString("## " + titleCase(string(g.Name)) + "\n\n")
		for _, f := range g.Files {
			sb.WriteString("- [" + f.Header + "](" + string(g.Name) + "/" + f.Filename + ")\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// titleCase uppercases the first letter of each word. Category names are
// single lowercase words, so this is enough for index headings.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
