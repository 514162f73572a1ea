package profiles

import (
	"github.com/skuforge/skuforge/internal/convert"
	"github.com/skuforge/skuforge/internal/model"
)

// headerKeywords mark the rows that open a sub-table and define its
// column semantics in-band.
var headerKeywords = []string{"Type", "Cat. No."}

// headeredFields maps this layout's canonical headers onto record
// fields. The price header appears both with and without the currency
// glyph, which normalization reduces to "()".
var headeredFields = convert.FieldMap{
	ID:          []string{"Cat. No.", "ID"},
	Description: []string{"Type"},
	Price:       []string{"M.R.P. Per Unit", "M.R.P. () Per Unit"},
}

// Headered handles the layout that exposes its own column headers
// in-band: a header row names the columns, following rows map onto
// them positionally, and every non-canonical column becomes an
// attribute keyed by its header text.
func Headered() *convert.Profile {
	return &convert.Profile{
		Name: "headered",
		Match: func(sig convert.Signature) bool {
			return sig.Contains("cat. no.") || sig.Contains("m.r.p")
		},
		// A blank row or a new header row closes the sub-table.
		CloseOnBlank: true,
		Header: func(r convert.Row) (convert.HeaderUpdate, bool) {
			if !hasHeaderKeyword(r) {
				return convert.HeaderUpdate{}, false
			}
			var columns []string
			for _, cell := range r.NonEmpty() {
				columns = append(columns, convert.NormalizeKey(cell))
			}
			return convert.HeaderUpdate{Columns: columns}, true
		},
		Data: func(r convert.Row, st *convert.SectionState) bool {
			// Only rows inside an opened sub-table are data; anything
			// before the first header row has no column semantics.
			return len(st.Columns) > 0
		},
		Extract: func(r convert.Row, st *convert.SectionState) []model.Record {
			rec := convert.CollectByHeaders(r, st.Columns, headeredFields)
			return []model.Record{rec}
		},
	}
}

func hasHeaderKeyword(r convert.Row) bool {
	for _, cell := range r.Cells {
		for _, kw := range headerKeywords {
			if cell == kw {
				return true
			}
		}
	}
	return false
}
