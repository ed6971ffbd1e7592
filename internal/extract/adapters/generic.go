package adapters

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/ppiankov/commentspell/internal/extract"
	"github.com/ppiankov/commentspell/internal/model"
)

// BlockAdapter is the fallback adapter. It reads "/* ... */" style block
// comments, which covers C, C++ and their headers.
type BlockAdapter struct {
	config *model.BlockConfig
}

// NewBlockAdapter creates a new block comment adapter
func NewBlockAdapter(cfg *model.BlockConfig) *BlockAdapter {
	if cfg == nil {
		cfg = &model.DefaultConfig().Block
	}
	return &BlockAdapter{config: cfg}
}

// Name returns the adapter name
func (a *BlockAdapter) Name() string {
	return "block"
}

// CanHandle always returns true (fallback adapter)
func (a *BlockAdapter) CanHandle(path string) bool {
	return true
}

// Extract returns the aligned block comments of src
func (a *BlockAdapter) Extract(ctx context.Context, path string, src []byte) ([]model.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract canceled: %w", err)
	}
	if !utf8.Valid(src) {
		return nil, extract.ErrNotText
	}
	return extract.BlockComments(path, string(src), a.config), nil
}
