package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ppiankov/commentspell/internal/pipeline"
)

// Handler receives one debounced batch of changed source files
type Handler func(ctx context.Context, paths []string)

// Watcher re-checks source files under a directory tree as they change.
// Changes are collected until the tree has been quiet for the debounce
// window, then handed over as a single sorted batch.
type Watcher struct {
	root     string
	exts     []string
	debounce time.Duration
	handler  Handler
	notify   *fsnotify.Watcher
}

// New creates a watcher for root. Every directory below root is watched
// except those whose name starts with a dot.
func New(root string, exts []string, debounce time.Duration, handler Handler) (*Watcher, error) {
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		root:     root,
		exts:     exts,
		debounce: debounce,
		handler:  handler,
		notify:   notify,
	}

	if err := w.addTree(root); err != nil {
		_ = notify.Close()
		return nil, err
	}

	return w, nil
}

// Run delivers batches to the handler until ctx is canceled
func (w *Watcher) Run(ctx context.Context) error {
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.notify.Events:
			if !ok {
				return nil
			}
			if w.track(event) {
				pending[event.Name] = struct{}{}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.notify.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", slog.String("error", err.Error()))

		case <-timer.C:
			batch := w.flush(pending)
			pending = make(map[string]struct{})
			if len(batch) > 0 {
				w.handler(ctx, batch)
			}
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.notify.Close()
}

// track reports whether event touches a source file worth re-checking.
// New directories are added to the watch list as they appear.
func (w *Watcher) track(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return false
	}

	if info.IsDir() {
		if event.Has(fsnotify.Create) && !hidden(event.Name) {
			if err := w.addTree(event.Name); err != nil {
				slog.Warn("failed to watch directory", slog.String("path", event.Name), slog.String("error", err.Error()))
			}
		}
		return false
	}

	return pipeline.IsSource(event.Name, w.exts)
}

// flush returns the pending paths that still exist, sorted
func (w *Watcher) flush(pending map[string]struct{}) []string {
	batch := make([]string, 0, len(pending))
	for path := range pending {
		if _, err := os.Stat(path); err == nil {
			batch = append(batch, path)
		}
	}
	sort.Strings(batch)
	return batch
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && hidden(path) {
			return filepath.SkipDir
		}
		if err := w.notify.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		slog.Debug("watching directory", slog.String("path", path))
		return nil
	})
}

func hidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
