package adapters

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ppiankov/commentspell/internal/model"
)

// Adapter extracts comments from one family of source files
type Adapter interface {
	// Name returns the adapter name
	Name() string

	// CanHandle checks if this adapter understands the given file
	CanHandle(path string) bool

	// Extract returns the comments of src in source order
	Extract(ctx context.Context, path string, src []byte) ([]model.Comment, error)
}

// Registry dispatches files to language adapters
type Registry struct {
	adapters []Adapter
	generic  Adapter
}

// NewRegistry creates a registry with the built-in adapters
func NewRegistry(cfg *model.Config) *Registry {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	registry := &Registry{
		adapters: make([]Adapter, 0),
	}

	// Register built-in adapters
	registry.Register(NewPythonAdapter(&cfg.Python))

	// Everything else is treated as C-family block comments
	registry.generic = NewBlockAdapter(&cfg.Block)

	return registry
}

// Register registers a new adapter. Adapters are tried in registration order.
func (r *Registry) Register(adapter Adapter) {
	r.adapters = append(r.adapters, adapter)
}

// FindAdapter finds the adapter for the given file
func (r *Registry) FindAdapter(path string) Adapter {
	for _, adapter := range r.adapters {
		if adapter.CanHandle(path) {
			return adapter
		}
	}

	return r.generic
}

// Extract dispatches path to its adapter
func (r *Registry) Extract(ctx context.Context, path string, src []byte) ([]model.Comment, error) {
	return r.FindAdapter(path).Extract(ctx, path, src)
}

// hasExtension reports whether path ends in one of exts (case-insensitive)
func hasExtension(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
