package textsource

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// openMarkdown flattens a markdown file to plain text via the goldmark AST.
// Headings become standalone lines so the header detector sees them the
// same way it sees PDF section titles.
func openMarkdown(path string) (Source, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown file: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var sb strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(string(node.Text(src)))
			sb.WriteString("\n")
		default:
			if t := blockText(n, src); t != "" {
				sb.WriteString(t)
				sb.WriteString("\n")
			}
		}
	}

	return &memSource{pages: []string{sb.String()}}, nil
}

// blockText gets the text content of a goldmark AST node. Blocks with raw
// source lines use those directly; container blocks recurse.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := blockText(c, src); t != "" {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(t)
		}
	}
	return strings.TrimSpace(buf.String())
}
