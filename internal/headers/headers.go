// Package headers identifies section headers in extracted datasheet text.
package headers

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule is a single named header heuristic. Rules are independent; a line
// is a header if any rule matches the trimmed line.
type Rule struct {
	Name  string
	Match func(line string) bool
}

// numberedRe matches section numbering like "1.1 Overview" or "2.3.1. Timing".
// The letter after the numbering must be uppercase.
var numberedRe = regexp.MustCompile(`^\d+(\.\d+)*\.?\s+[A-Z]`)

// signalKeywords are terms that mark a short line as a likely section title
// regardless of its casing.
var signalKeywords = []string{
	"introduction", "overview", "specification", "features",
	"description", "operation", "configuration", "registers",
	"timing", "electrical", "mechanical", "package",
}

// Rules is the ordered heuristic set, evaluated with any-match semantics.
var Rules = []Rule{
	{
		Name: "numbered_section",
		Match: func(line string) bool {
			return numberedRe.MatchString(line)
		},
	},
	{
		Name: "all_caps",
		Match: func(line string) bool {
			return utf8.RuneCountInString(line) < 80 &&
				isUpper(line) &&
				len(strings.Fields(line)) > 1
		},
	},
	{
		Name: "title_case",
		Match: func(line string) bool {
			return utf8.RuneCountInString(line) < 60 &&
				isTitle(line) &&
				!strings.HasSuffix(line, ".") &&
				len(strings.Fields(line)) > 1
		},
	},
	{
		Name: "keyword",
		Match: func(line string) bool {
			if utf8.RuneCountInString(line) >= 80 {
				return false
			}
			lower := strings.ToLower(line)
			for _, kw := range signalKeywords {
				if strings.Contains(lower, kw) {
					return true
				}
			}
			return false
		},
	},
}

// Classify returns the name of the first rule matching the trimmed line,
// or false if no rule matches. Empty lines never match.
func Classify(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	for _, r := range Rules {
		if r.Match(line) {
			return r.Name, true
		}
	}
	return "", false
}

// Detect scans one page's text and returns trimmed lines classified as
// headers, in document order. Duplicates are kept; callers deduplicate
// across pages with Dedupe.
func Detect(pageText string) []string {
	var found []string
	for _, line := range strings.Split(pageText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, ok := Classify(line); ok {
			found = append(found, line)
		}
	}
	return found
}

// Dedupe removes repeated header text, preserving first-occurrence order.
func Dedupe(hs []string) []string {
	seen := make(map[string]bool, len(hs))
	var unique []string
	for _, h := range hs {
		if !seen[h] {
			unique = append(unique, h)
			seen[h] = true
		}
	}
	return unique
}

// isUpper reports whether s contains at least one cased letter and no
// lowercase letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitle reports whether every word's first letter is uppercase and the
// remaining letters are lowercase.
func isTitle(s string) bool {
	hasLetter := false
	for _, word := range strings.Fields(s) {
		first := true
		for _, r := range word {
			if !unicode.IsLetter(r) {
				continue
			}
			hasLetter = true
			if first {
				if !unicode.IsUpper(r) {
					return false
				}
				first = false
			} else if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
