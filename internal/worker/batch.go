package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/commentspell/internal/model"
)

// Extractor defines the interface for extracting the comments of one file
type Extractor interface {
	ExtractFile(ctx context.Context, path string) model.FileComments
}

// ExtractJob represents the extraction of a single file
type ExtractJob struct {
	Index     int
	Path      string
	Extractor Extractor
}

// Execute executes the extraction job
func (j *ExtractJob) Execute(ctx context.Context) Result {
	return &ExtractResult{
		Index: j.Index,
		File:  j.Extractor.ExtractFile(ctx, j.Path),
	}
}

// ExtractResult represents the result of an extraction job
type ExtractResult struct {
	Index int
	File  model.FileComments
}

// GetError returns the error from the extraction result
func (r *ExtractResult) GetError() error {
	return r.File.Err
}

// BatchProcessor extracts many files concurrently
type BatchProcessor struct {
	extractor   Extractor
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(extractor Extractor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		extractor:   extractor,
		concurrency: concurrency,
	}
}

// ProcessFiles extracts every path and returns the results in input order.
// Files not reached because ctx was canceled carry the context error.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []model.FileComments {
	if len(paths) == 0 {
		return []model.FileComments{}
	}

	// Create worker pool
	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Submit jobs
	for i, path := range paths {
		job := &ExtractJob{
			Index:     i,
			Path:      path,
			Extractor: b.extractor,
		}
		if !pool.Submit(job) {
			break
		}
	}

	// Wait for all jobs to complete
	results := pool.Wait()

	files := make([]model.FileComments, len(paths))
	done := make([]bool, len(paths))
	for _, result := range results {
		r := result.(*ExtractResult)
		files[r.Index] = r.File
		done[r.Index] = true
	}

	for i, path := range paths {
		if !done[i] {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			files[i] = model.FileComments{Path: path, Err: fmt.Errorf("%s: %w", path, err)}
		}
	}

	return files
}

// ReadPathsFromFile reads source paths from a file (one per line)
func ReadPathsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate paths
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
