package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skuforge/skuforge/internal/model"
)

// Converter converts one document into a per-document summary.
type Converter interface {
	ConvertFile(ctx context.Context, path string) *model.DocumentSummary
}

// ConvertJob converts a single document.
type ConvertJob struct {
	Path      string
	Converter Converter
}

// Execute runs the conversion.
func (j *ConvertJob) Execute(ctx context.Context) Result {
	return &ConvertResult{Summary: j.Converter.ConvertFile(ctx, j.Path)}
}

// ConvertResult wraps a document summary as a pool result.
type ConvertResult struct {
	Summary *model.DocumentSummary
}

// GetError returns the document's failure, if any.
func (r *ConvertResult) GetError() error {
	return r.Summary.Err
}

// BatchProcessor converts many documents concurrently. Each document
// gets its own engine run with its own section state, so parallel
// execution needs no locks.
type BatchProcessor struct {
	converter   Converter
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(converter Converter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		converter:   converter,
		concurrency: concurrency,
	}
}

// ProcessPaths converts the given documents in parallel.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*model.DocumentSummary {
	if len(paths) == 0 {
		return []*model.DocumentSummary{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()
	for _, path := range paths {
		pool.Submit(&ConvertJob{Path: path, Converter: b.converter})
	}
	results := pool.Wait()

	summaries := make([]*model.DocumentSummary, len(results))
	for i, result := range results {
		summaries[i] = result.(*ConvertResult).Summary
	}
	return summaries
}

// ProcessDir converts every supported document found in a directory.
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string) ([]*model.DocumentSummary, error) {
	paths, err := ListDocuments(dir)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ProcessFile reads document paths from a list file and converts them.
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*model.DocumentSummary, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// documentGlobs are the document kinds the ingest layer reads.
var documentGlobs = []string{"*.csv", "*.html", "*.htm", "*.pdf", "*.txt"}

// ListDocuments finds supported documents directly under dir, sorted
// for deterministic processing order.
func ListDocuments(dir string) ([]string, error) {
	var paths []string
	for _, pattern := range documentGlobs {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadPathsFromFile reads document paths from a file (one per line,
// '#' comments, duplicates dropped).
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
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
