package textsource

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// pdfSource reads pages lazily through ledongthuc/pdf.
type pdfSource struct {
	f      *os.File
	reader *pdflib.Reader
}

// openPDF tries the Go library first, then falls back to pdftotext if
// enabled and available.
func openPDF(path string, opts Options) (Source, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		if opts.FallbackPdftotext {
			return openPdftotext(path)
		}
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &pdfSource{f: f, reader: reader}, nil
}

func (p *pdfSource) PageCount() int { return p.reader.NumPage() }

func (p *pdfSource) PageText(page int) (string, bool) {
	if page < 1 || page > p.reader.NumPage() {
		return "", false
	}
	pg := p.reader.Page(page)
	if pg.V.IsNull() {
		return "", false
	}
	text, err := pg.GetPlainText(nil)
	if err != nil || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

func (p *pdfSource) Close() error { return p.f.Close() }

// openPdftotext shells out to pdftotext and splits the output on form
// feeds, which the tool emits between pages.
func openPdftotext(path string) (Source, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	return &memSource{pages: strings.Split(string(out), "\f")}, nil
}
