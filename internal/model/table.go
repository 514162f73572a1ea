package model

// RawTable is one extracted table: a sequence of rows of nullable cells.
// Rows may be ragged (varying length) and cells may be nil, strings, or
// numbers depending on what the upstream extractor produced.
type RawTable struct {
	Source string  // Document the table came from (path or URL)
	Rows   [][]any // Raw cell values, unnormalized
}
