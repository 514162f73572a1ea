package model

// Record is the canonical catalog entry produced from any source table
// format. The schema matches the exported JSON artifacts: one object per
// product with an open attribute map for format-specific fields.
type Record struct {
	ID          string     `json:"ID"`          // Catalog identifier; always non-empty in emitted records
	Title       string     `json:"title"`       // Often inherited from the enclosing section header
	Description string     `json:"description"` // May be empty
	Price       *float64   `json:"price"`       // nil when the source cell was absent or unparsable
	Attributes  Attributes `json:"attributes"`  // Format-specific leftover fields
}

// Attributes is an open mapping of normalized attribute names to values.
// Values are strings, numbers, or nested maps (dimensions).
type Attributes map[string]any

// NewRecord returns a record with an initialized attribute map so the
// JSON artifact always carries an "attributes" object, never null.
func NewRecord() Record {
	return Record{Attributes: Attributes{}}
}

// SetAttr stores an attribute, overwriting any previous value for the
// same key. Empty keys and nil values are ignored.
func (r *Record) SetAttr(key string, value any) {
	if key == "" || value == nil {
		return
	}
	if r.Attributes == nil {
		r.Attributes = Attributes{}
	}
	r.Attributes[key] = value
}

// Accepted reports whether the record passes the universal acceptance
// gate: a non-empty, non-whitespace identifier.
func (r *Record) Accepted() bool {
	for _, c := range r.ID {
		if c != ' ' && c != '\t' {
			return true
		}
	}
	return false
}
