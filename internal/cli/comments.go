package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/commentspell/internal/model"
	"github.com/ppiankov/commentspell/internal/pipeline"
	"github.com/ppiankov/commentspell/internal/worker"
)

// commentsCmd represents the comments command
var commentsCmd = &cobra.Command{
	Use:   "comments <path>...",
	Short: "Dump extracted comments and candidate words as YAML",
	Long: `Comments runs extraction only and prints what would be spell checked:
each comment with its file, line and kind, and the words left after code-like
tokens were dropped. Useful for tuning the extraction settings.

Example:
  commentspell comments source/blender/blenkernel/intern/mesh.c
  commentspell comments scripts/ --single-line`,
	Args: cobra.MinimumNArgs(1),
	RunE: runComments,
}

func init() {
	rootCmd.AddCommand(commentsCmd)
}

func runComments(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	paths, failed := collectSources(args, cfg.Sources.Extensions)
	total := len(paths) + failed
	results := worker.NewBatchProcessor(pipeline.NewPipeline(cfg), cfg.Concurrency.Workers).ProcessFiles(ctx, paths)

	extracted := make([]model.FileComments, 0, len(results))
	for _, fc := range results {
		if fc.Err != nil {
			slog.Error("failed to extract file", slog.String("error", fc.Err.Error()))
			failed++
			continue
		}
		extracted = append(extracted, fc)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer func() {
		if closeErr := enc.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close encoder: %w", closeErr)
		}
	}()

	if err := enc.Encode(extracted); err != nil {
		return fmt.Errorf("encode comments: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, total)
	}
	return nil
}
