package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

var matchCmd = &cobra.Command{
	Use:   "match --jd <file|-> <resume.pdf>...",
	Short: "Rank résumés by similarity to a job description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := cfg.ValidateEmbedding(); err != nil {
			return err
		}

		jdPath, _ := cmd.Flags().GetString("jd")
		jd, err := readJobDescription(cmd.InOrStdin(), jdPath)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		embedder, closeEmbedder, err := services.NewEmbedder(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeEmbedder()

		extractor := services.NewExtractorService(services.NewPDFParserService())
		return matchFiles(ctx, cmd.OutOrStdout(), extractor, embedder, jd, args, cfg.Worker.MatchConcurrency, log)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().String("jd", "", "job description file, or - to read it from stdin")
	matchCmd.MarkFlagRequired("jd")
}

func readJobDescription(stdin io.Reader, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading job description: %w", err)
	}

	jd := strings.TrimSpace(string(data))
	if jd == "" {
		return "", fmt.Errorf("job description is empty")
	}
	return jd, nil
}

type matchOutput struct {
	Results analyzer.RankedResults    `json:"results"`
	Skipped []models.SkippedCandidate `json:"skipped"`
}

func matchFiles(
	ctx context.Context,
	out io.Writer,
	extractor services.ExtractorService,
	embedder analyzer.Embedder,
	jd string,
	paths []string,
	concurrency int,
	log *zap.Logger,
) error {
	files := make([]services.CandidateFile, 0, len(paths))
	for _, p := range paths {
		if !analyzer.IsSupportedResume(p) {
			log.Warn("skipping file that is not a PDF", zap.String("file", p))
			continue
		}
		files = append(files, services.CandidateFile{ID: filepath.Base(p), Path: p})
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF résumés given")
	}

	log.Info("matching résumés", zap.Int("files", len(files)), zap.String("job_description", logger.Truncate(jd, 80)))

	candidates, skipped := services.ExtractCandidates(ctx, extractor, files, concurrency)

	outcome, err := analyzer.NewRanker(embedder, concurrency).Rank(ctx, jd, candidates)
	if err != nil {
		return err
	}

	for _, f := range outcome.Failures {
		skipped = append(skipped, models.SkippedCandidate{CandidateID: f.CandidateID, Reason: f.Err.Error()})
	}
	for _, s := range skipped {
		log.Warn("résumé not ranked", zap.String("file", s.CandidateID), zap.String("reason", s.Reason))
	}

	if skipped == nil {
		skipped = []models.SkippedCandidate{}
	}
	return writeJSON(out, matchOutput{Results: outcome.Results, Skipped: skipped})
}
