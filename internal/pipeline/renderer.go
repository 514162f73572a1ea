package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skuforge/skuforge/internal/model"
)

// Renderer writes per-document record lists as JSON artifacts and
// prints the per-document summary lines.
type Renderer struct {
	dir     string
	verbose bool
}

// NewRenderer creates a renderer targeting the given output directory.
func NewRenderer(dir string, verbose bool) *Renderer {
	return &Renderer{dir: dir, verbose: verbose}
}

// ArtifactPath derives the deterministic artifact name from the source
// document's base name.
func (r *Renderer) ArtifactPath(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSuffix(base, "_cleaned")
	base = strings.TrimSuffix(base, "_extracted")
	return filepath.Join(r.dir, base+".json")
}

// WriteRecords writes the record list as an indented JSON array. The
// write goes to a temp file first and is renamed into place, so a
// failure never leaves a partial artifact. An empty record list still
// produces a valid "[]" artifact.
func (r *Renderer) WriteRecords(source string, records []model.Record) (string, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	if records == nil {
		records = []model.Record{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal records: %w", err)
	}
	data = append(data, '\n')

	dest := r.ArtifactPath(source)
	tmp, err := os.CreateTemp(r.dir, ".artifact-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("rename artifact: %w", err)
	}
	return dest, nil
}

// RenderSummary prints one document's outcome in the ✓/✗ batch style.
func (r *Renderer) RenderSummary(s *model.DocumentSummary) {
	if s.Failed() {
		fmt.Fprintf(os.Stderr, "✗ %s: %v\n", s.Source, s.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "✓ %s: %d records (%s)\n", s.Source, s.Records, s.Profile)
	if r.verbose {
		fmt.Fprintf(os.Stderr, "  dropped rows: %d\n", s.RowsDropped)
		fmt.Fprintf(os.Stderr, "  artifact:     %s\n", s.Artifact)
	}
}
