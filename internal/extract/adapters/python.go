package adapters

import (
	"context"

	"github.com/ppiankov/commentspell/internal/extract"
	"github.com/ppiankov/commentspell/internal/model"
)

// PythonAdapter reads comments and docstrings from Python sources
type PythonAdapter struct {
	config *model.PythonConfig
}

// NewPythonAdapter creates a new Python adapter
func NewPythonAdapter(cfg *model.PythonConfig) *PythonAdapter {
	if cfg == nil {
		cfg = &model.DefaultConfig().Python
	}
	return &PythonAdapter{config: cfg}
}

// Name returns the adapter name
func (a *PythonAdapter) Name() string {
	return "python"
}

// CanHandle checks for a .py extension
func (a *PythonAdapter) CanHandle(path string) bool {
	return hasExtension(path, ".py")
}

// Extract returns docstrings and "#" comments of src
func (a *PythonAdapter) Extract(ctx context.Context, path string, src []byte) ([]model.Comment, error) {
	return extract.PythonComments(ctx, path, src, a.config)
}
