package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/services"
)

var indexCmd = &cobra.Command{
	Use:   "index <dir>",
	Short: "Extract every PDF résumé in a directory and store it in the search index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := cfg.ValidateEmbedding(); err != nil {
			return err
		}

		ctx := cmd.Context()
		embedder, closeEmbedder, err := services.NewEmbedder(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeEmbedder()

		qdrantService, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, log)
		if err != nil {
			return err
		}
		if err := qdrantService.InitCollection(ctx); err != nil {
			return err
		}

		extractor := services.NewExtractorService(services.NewPDFParserService())
		indexer := services.NewResumeIndexer(embedder, qdrantService, services.NewTextChunker(), log)

		return indexDir(ctx, cmd.OutOrStdout(), extractor, indexer, args[0], log)
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

// documentID derives a stable id from the file path so that indexing the same
// file again replaces its chunks.
func documentID(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+abs)).String()
}

func indexDir(
	ctx context.Context,
	out io.Writer,
	extractor services.ExtractorService,
	indexer services.ResumeIndexer,
	dir string,
	log *zap.Logger,
) error {
	var indexed, failed int

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !analyzer.IsSupportedResume(path) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		profile, err := extractor.Extract(path)
		if err != nil {
			log.Warn("failed to extract résumé", zap.String("file", path), zap.Error(err))
			failed++
			return nil
		}

		docID := documentID(path)
		chunks, err := indexer.IndexResume(ctx, docID, profile.RawText)
		if err != nil {
			log.Warn("failed to index résumé", zap.String("file", path), zap.Error(err))
			failed++
			return nil
		}

		log.Info("résumé indexed", zap.String("file", path), zap.String("doc_id", docID), zap.Int("chunks", chunks))
		fmt.Fprintf(out, "%s\t%s\t%d chunks\n", docID, path, chunks)
		indexed++
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", dir, err)
	}

	fmt.Fprintf(out, "indexed %d résumé(s), %d failed\n", indexed, failed)
	if indexed == 0 && failed > 0 {
		return fmt.Errorf("no résumé in %s could be indexed", dir)
	}
	return nil
}
