package textsource

import (
	"fmt"
	"os"
)

// openText reads a plain text file as a single page.
func openText(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	return &memSource{pages: []string{string(data)}}, nil
}
