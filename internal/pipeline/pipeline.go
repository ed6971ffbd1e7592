package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ppiankov/commentspell/internal/extract"
	"github.com/ppiankov/commentspell/internal/extract/adapters"
	"github.com/ppiankov/commentspell/internal/model"
)

// Pipeline turns one source file into its comments and candidate words
type Pipeline struct {
	registry *adapters.Registry
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	return &Pipeline{
		registry: adapters.NewRegistry(cfg),
		config:   cfg,
	}
}

// ExtractFile reads, extracts and classifies a single file. Failures are
// reported through FileComments.Err so a batch can carry on.
func (p *Pipeline) ExtractFile(ctx context.Context, path string) model.FileComments {
	result := model.FileComments{Path: path}

	// 1. Read
	src, err := ReadSource(path, p.config.Sources.MaxFileBytes)
	if err != nil {
		result.Err = fmt.Errorf("%s: %w", path, err)
		return result
	}

	// 2. Extract
	adapter := p.registry.FindAdapter(path)
	comments, err := adapter.Extract(ctx, path, src)
	if err != nil {
		result.Err = fmt.Errorf("%s: extract %s: %w", path, adapter.Name(), err)
		return result
	}

	// 3. Classify
	result.Comments = make([]model.CheckedComment, 0, len(comments))
	for _, c := range comments {
		result.Comments = append(result.Comments, model.CheckedComment{
			Comment: c,
			Words:   extract.Words(c.Text),
		})
	}

	slog.Debug("extracted comments",
		slog.String("file", path),
		slog.String("adapter", adapter.Name()),
		slog.Int("comments", len(result.Comments)),
		slog.Int("words", result.WordCount()))

	return result
}
