package suggest

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// TrimPDF returns a copy of the PDF reduced to its first maxPages pages,
// so uploads match the page range the pipeline actually processed. A
// negative maxPages means the whole document.
func TrimPDF(data []byte, maxPages int) ([]byte, error) {
	if maxPages < 0 {
		return data, nil
	}

	conf := model.NewDefaultConfiguration()
	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	if maxPages >= pdfCtx.PageCount {
		return data, nil
	}

	var buf bytes.Buffer
	pages := []string{fmt.Sprintf("1-%d", maxPages)}
	if err := api.Trim(bytes.NewReader(data), &buf, pages, conf); err != nil {
		return nil, fmt.Errorf("trim pdf: %w", err)
	}
	return buf.Bytes(), nil
}
