package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/sheetsplit/internal/config"
	"github.com/dgallion1/sheetsplit/internal/pipeline"
	"github.com/dgallion1/sheetsplit/internal/suggest"
	"github.com/dgallion1/sheetsplit/internal/writer"
)

var processCmd = &cobra.Command{
	Use:   "process <document>",
	Short: "Split one document into a directory of topic files",
	Long: `Process runs the splitting pipeline once for a single document and
prints a summary. Supported inputs: pdf, txt, md, html, docx. Failures
are logged and produce an empty summary; the command itself does not
crash on a bad document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

		cfg := config.Load()
		if out, _ := cmd.Flags().GetString("output"); out != "" {
			cfg.OutputDir = out
		}
		maxPages, _ := cmd.Flags().GetInt("max-pages")
		wantSuggest, _ := cmd.Flags().GetBool("suggest")

		if wantSuggest {
			if err := cfg.ValidateSuggest(); err != nil {
				return err
			}
		}

		proc := pipeline.NewProcessor(cfg, writer.Disk{}, log)
		res := proc.Process(cmd.Context(), args[0], maxPages)
		if res.Empty() {
			fmt.Fprintln(os.Stderr, "processing failed, see log output")
			return nil
		}

		fmt.Printf("Processed %s\n", res.DocumentPath)
		fmt.Printf("  pages:   %d/%d\n", res.PagesProcessed, res.TotalPages)
		fmt.Printf("  headers: %d\n", res.HeadersFound)
		fmt.Printf("  chunks:  %d\n", res.ContentChunks)
		for _, g := range res.Structure.Categories {
			fmt.Printf("  %s/: %d files\n", g.Name, len(g.Files))
		}

		if wantSuggest {
			data, err := os.ReadFile(args[0])
			if err != nil {
				log.Error("read document for suggestion", "error", err)
				return nil
			}
			client := suggest.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
			raw, err := pipeline.RunSuggestion(cmd.Context(), client, data, maxPages, res.Headers, log)
			if err != nil {
				log.Error("suggestion failed", "error", err)
				return nil
			}
			stem := pipeline.DocStem(args[0])
			if err := proc.WriteArtifact(stem, pipeline.SuggestedStructureFile, raw); err != nil {
				log.Error("suggestion artifact write failed", "error", err)
				return nil
			}
			fmt.Printf("  suggested structure: %s/%s/%s\n", cfg.OutputDir, stem, pipeline.SuggestedStructureFile)
		}
		return nil
	},
}

func init() {
	processCmd.Flags().String("output", "", "output directory (default from config, \"output\")")
	processCmd.Flags().Int("max-pages", -1, "number of pages to process, -1 for the entire document")
	processCmd.Flags().Bool("suggest", false, "also generate an AI-suggested structure (PDF only)")

	rootCmd.AddCommand(processCmd)
}
