package profiles

import (
	"github.com/skuforge/skuforge/internal/convert"
	"github.com/skuforge/skuforge/internal/model"
)

// Sectioned handles the four-column layout whose product identity lives
// in section/category rows: a numeric id in column 0, description in
// column 1, optional pack size in column 2, price in column 3. The
// leaked "PROBLEMSOLUTION" column header is this layout's reliable
// fingerprint. Pack-size spillover rows continue the previous record.
func Sectioned() *convert.Profile {
	return &convert.Profile{
		Name: "sectioned",
		Match: func(sig convert.Signature) bool {
			return sig.Contains("problemsolution")
		},
		// The catalog body starts after a fixed front-matter block in
		// this layout.
		StartRow: 25,
		Header: func(r convert.Row) (convert.HeaderUpdate, bool) {
			if r.Cell(0) == "" && r.Cell(1) != "" && r.Cell(2) == "" {
				return convert.HeaderUpdate{Title: r.Cell(1)}, true
			}
			return convert.HeaderUpdate{}, false
		},
		Data: func(r convert.Row, _ *convert.SectionState) bool {
			return convert.IsInteger(r.Cell(0))
		},
		Continuation: func(r convert.Row) bool {
			return r.Cell(0) == "" && r.Cell(1) == "" && r.Cell(2) != ""
		},
		Extract: func(r convert.Row, st *convert.SectionState) []model.Record {
			rec := model.NewRecord()
			rec.ID = r.Cell(0)
			rec.Title = st.Title
			rec.Description = r.Cell(1)
			rec.Price = convert.ParsePrice(r.Cell(3))
			if pack := r.Cell(2); pack != "" {
				rec.SetAttr("Pack Size", pack)
			}
			return []model.Record{rec}
		},
		Merge: func(r convert.Row, last *model.Record) {
			last.SetAttr("Pack Size", r.Cell(2))
		},
	}
}
