// Package chunker partitions full document text into contiguous chunks
// bounded by detected section headers.
package chunker

import "strings"

// Chunk is one contiguous span of document text under a single header.
// Content keeps raw lines with terminators; trimming happens when the
// directory structure is built.
type Chunk struct {
	Header  string
	Content string
}

// Sentinel headers for text outside any detected section.
const (
	IntroHeader       = "Introduction"
	MainContentHeader = "Main Content"
)

// Split scans fullText line by line and closes the current chunk whenever a
// trimmed line exactly equals one of the header strings. A header string
// appearing mid-paragraph only starts a chunk if it stands alone on a line;
// matching is exact trimmed-line equality, nothing fuzzier.
func Split(fullText string, headers []string) []Chunk {
	if len(headers) == 0 {
		return []Chunk{{Header: MainContentHeader, Content: fullText}}
	}

	headerSet := make(map[string]bool, len(headers))
	for _, h := range headers {
		headerSet[h] = true
	}

	var chunks []Chunk
	current := Chunk{Header: IntroHeader}

	for _, line := range strings.Split(fullText, "\n") {
		trimmed := strings.TrimSpace(line)
		if headerSet[trimmed] {
			if strings.TrimSpace(current.Content) != "" {
				chunks = append(chunks, current)
			}
			current = Chunk{Header: trimmed}
		} else {
			current.Content += line + "\n"
		}
	}

	if strings.TrimSpace(current.Content) != "" {
		chunks = append(chunks, current)
	}

	return chunks
}
