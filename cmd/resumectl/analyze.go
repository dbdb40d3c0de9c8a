package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/services"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf>",
	Short: "Print the level, field recommendation and score of a résumé",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		extractor := services.NewExtractorService(services.NewPDFParserService())
		return analyzeFile(cmd.OutOrStdout(), extractor, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func analyzeFile(out io.Writer, extractor services.ExtractorService, path string) error {
	if !analyzer.IsSupportedResume(path) {
		return fmt.Errorf("%w: %s", services.ErrUnsupportedFile, path)
	}

	profile, err := extractor.Extract(path)
	if err != nil {
		return err
	}

	report := analyzer.Analyze(profile, analyzer.NewRecommender(nil))
	return writeJSON(out, report)
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
