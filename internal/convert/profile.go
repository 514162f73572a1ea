package convert

import "github.com/skuforge/skuforge/internal/model"

// Profile is the immutable descriptor of one table layout: the
// predicates that classify its rows and the rules that extract records
// from them. Exactly one profile is bound per document; profiles never
// mix within a table.
type Profile struct {
	// Name identifies the profile in summaries and artifacts.
	Name string

	// Match reports whether this profile's structural signature fits
	// the table. Checked once per document by the registry.
	Match func(sig Signature) bool

	// StartRow skips document front-matter before classification.
	StartRow int

	// Noise overrides the shared noise thresholds when non-nil.
	Noise *NoiseFilter

	// Header recognizes section header rows and yields the context
	// update they carry. Nil when the format has no section headers.
	Header func(r Row) (HeaderUpdate, bool)

	// Data recognizes data rows.
	Data func(r Row, st *SectionState) bool

	// CloseOnBlank ends the open sub-table when an all-empty row
	// arrives: the in-band column context is cleared, so rows between
	// sub-tables never map onto stale headers.
	CloseOnBlank bool

	// Continuation recognizes rows that extend the previous record.
	// Nil when the format has no multi-row entries.
	Continuation func(r Row) bool

	// Extract maps a data row to zero or more candidate records. The
	// engine applies the id acceptance gate afterwards; Extract itself
	// never filters on id.
	Extract func(r Row, st *SectionState) []model.Record

	// Merge folds a continuation row into the most recently emitted
	// record. Nil when Continuation is nil.
	Merge func(r Row, last *model.Record)
}

// NoiseFilter holds the row-noise thresholds: a case-insensitive
// substring denylist and a maximum cell length.
type NoiseFilter struct {
	Denylist   []string
	MaxCellLen int
}

// NoiseFilterFromConfig builds the shared filter from configuration.
func NoiseFilterFromConfig(cfg model.NoiseConfig) NoiseFilter {
	return NoiseFilter{
		Denylist:   cfg.Denylist,
		MaxCellLen: cfg.MaxCellLen,
	}
}
