package suggest

import "strings"

// TreePrompt asks the model for a directory/file structure organizing a
// datasheet's content.
const TreePrompt = `Analyze this datasheet and create a comprehensive directory/file structure for organizing its content.

CRITICAL REQUIREMENTS:
- Use HIGHLY DESCRIPTIVE and SPECIFIC file names - err on the side of long, descriptive names
- Break up ANY section that might be long into multiple smaller, focused files
- Each file should contain only ONE specific topic or concept
- If a section covers multiple topics, create separate files for each topic
- Create deep directory structures with logical groupings

Return a JSON structure with file and directory names that organize this datasheet's content.
Focus on major sections like overview, specifications, pinout, registers, operation modes, etc.
For each major section, think about what sub-topics exist and create separate files for each.

Format as valid JSON with nested structure showing directories and files.
Example format:
{
  "overview": {
    "description.md": null,
    "features.md": null
  },
  "specifications": {
    "electrical.md": null,
    "mechanical.md": null
  }
}`

// BuildRefinePrompt combines the model's earlier structure with the headers
// the heuristic detector found.
func BuildRefinePrompt(aiStructure string, headers []string) string {
	var sb strings.Builder
	sb.WriteString("Based on the AI-generated structure and the extracted headers, create an IMPROVED and MORE GRANULAR file structure.\n\n")
	sb.WriteString("REQUIREMENTS:\n")
	sb.WriteString("- Each file should contain only ONE specific topic or concept\n")
	sb.WriteString("- Use the extracted headers to identify specific topics that need separate files\n")
	sb.WriteString("- Use the exact terminology from the headers in your filenames\n\n")
	sb.WriteString("AI-GENERATED STRUCTURE:\n")
	sb.WriteString(aiStructure)
	sb.WriteString("\n\nEXTRACTED HEADERS:\n")
	sb.WriteString(strings.Join(headers, "\n"))
	sb.WriteString("\n\nReturn ONLY valid JSON with the refined structure.")
	return sb.String()
}
