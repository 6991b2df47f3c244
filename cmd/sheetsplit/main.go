// Package main is the entry point for the sheetsplit CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the sheetsplit CLI.
var rootCmd = &cobra.Command{
	Use:   "sheetsplit",
	Short: "Split technical PDF datasheets into topic-focused markdown files",
	Long: `sheetsplit converts a hardware datasheet into a hierarchy of small,
topic-focused markdown files. Section headers are detected with simple
heuristics, content between consecutive headers becomes one file, and
files are grouped into category directories (registers, specifications,
overview, operation, mechanical, general).

Run "sheetsplit process" for one-shot conversion, or "sheetsplit serve"
to expose the pipeline over HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
