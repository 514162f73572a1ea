// Package pipeline orchestrates one document's journey: ingest, format
// dispatch, engine run, artifact rendering.
package pipeline

import (
	"context"
	"fmt"

	"github.com/skuforge/skuforge/internal/convert"
	"github.com/skuforge/skuforge/internal/convert/profiles"
	"github.com/skuforge/skuforge/internal/ingest"
	"github.com/skuforge/skuforge/internal/model"
	"github.com/skuforge/skuforge/internal/sink"
)

// Pipeline converts documents into canonical record artifacts.
type Pipeline struct {
	registry *profiles.Registry
	noise    convert.NoiseFilter
	renderer *Renderer
	catalog  *sink.Catalog // Optional SQLite sink (nil when disabled)
}

// NewPipeline creates a pipeline from configuration. The SQLite
// catalog sink is attached only when configured.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	p := &Pipeline{
		registry: profiles.NewRegistry(),
		noise:    convert.NoiseFilterFromConfig(cfg.Noise),
		renderer: NewRenderer(cfg.Output.Dir, cfg.Output.Verbose),
	}
	if cfg.Sink.SQLitePath != "" {
		catalog, err := sink.OpenCatalog(cfg.Sink.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open catalog sink: %w", err)
		}
		p.catalog = catalog
	}
	return p, nil
}

// Close releases the optional sink.
func (p *Pipeline) Close() error {
	if p.catalog != nil {
		return p.catalog.Close()
	}
	return nil
}

// ConvertFile converts one document. The summary carries either the
// record count and artifact path or the failure reason; a failed
// document never leaves a partial artifact behind.
func (p *Pipeline) ConvertFile(ctx context.Context, path string) *model.DocumentSummary {
	summary := &model.DocumentSummary{Source: path}

	if err := ctx.Err(); err != nil {
		summary.Err = err
		return summary
	}

	table, err := ingest.Open(path)
	if err != nil {
		summary.Err = err
		return summary
	}

	sig := convert.ComputeSignature(table)
	profile, err := p.registry.Find(sig)
	if err != nil {
		// Fail closed: an unrecognized layout is rejected outright,
		// never parsed with a best-guess profile.
		summary.Err = fmt.Errorf("%s: %w", path, err)
		return summary
	}
	summary.Profile = profile.Name

	result := convert.NewEngine(profile, p.noise).Run(table)
	summary.Records = len(result.Records)
	summary.RowsDropped = result.Dropped

	artifact, err := p.renderer.WriteRecords(path, result.Records)
	if err != nil {
		summary.Err = fmt.Errorf("write artifact: %w", err)
		return summary
	}
	summary.Artifact = artifact

	if p.catalog != nil {
		if err := p.catalog.StoreDocument(path, result.Records); err != nil {
			summary.Err = fmt.Errorf("store records: %w", err)
			return summary
		}
	}
	return summary
}
