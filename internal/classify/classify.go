// Package classify maps chunk headers to topical categories and derives
// safe filenames from header text.
package classify

import (
	"regexp"
	"strings"
)

// Category is one of the fixed topical buckets used to group chunks.
type Category string

const (
	Registers      Category = "registers"
	Specifications Category = "specifications"
	Overview       Category = "overview"
	Operation      Category = "operation"
	Mechanical     Category = "mechanical"
	General        Category = "general"
)

// categoryRule binds a category to the keywords that select it. The table
// is ordered; the first rule with any keyword present in the lowercased
// header wins.
type categoryRule struct {
	category Category
	keywords []string
}

var categoryRules = []categoryRule{
	{Registers, []string{"register", "configuration", "control"}},
	{Specifications, []string{"timing", "electrical", "specification"}},
	{Overview, []string{"feature", "overview", "description"}},
	{Operation, []string{"operation", "mode", "function"}},
	{Mechanical, []string{"package", "mechanical", "pin"}},
}

// Categorize assigns a header to a category. Total over any string;
// General is the default.
func Categorize(header string) Category {
	lower := strings.ToLower(header)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return General
}

var (
	numberPrefixRe = regexp.MustCompile(`^\d+(\.\d+)*\.?\s*`)
	nonAlnumRe     = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

const maxFilenameLen = 50

// Filename derives a markdown filename from header text: numbering prefix
// stripped, punctuation removed, whitespace collapsed to underscores,
// lowercased, truncated. Never empty; always ends in ".md".
func Filename(header string) string {
	name := numberPrefixRe.ReplaceAllString(header, "")
	name = nonAlnumRe.ReplaceAllString(name, "")
	name = whitespaceRe.ReplaceAllString(strings.TrimSpace(name), "_")
	name = strings.ToLower(name)
	if len(name) > maxFilenameLen {
		name = name[:maxFilenameLen]
	}
	if name == "" {
		name = "section"
	}
	return name + ".md"
}
