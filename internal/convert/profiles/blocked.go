package profiles

import (
	"strings"

	"github.com/skuforge/skuforge/internal/convert"
	"github.com/skuforge/skuforge/internal/model"
)

// Blocked handles the layout built from stacked sub-tables: a lone
// first-cell row titles each block, an in-band "Part No" header row
// precedes the data, and wide rows carry regional price variants in the
// trailing columns.
func Blocked() *convert.Profile {
	return &convert.Profile{
		Name: "blocked",
		Match: func(sig convert.Signature) bool {
			return sig.Contains("part no") && sig.MaxColumns >= 6
		},
		Header: func(r convert.Row) (convert.HeaderUpdate, bool) {
			populated := r.NonEmpty()
			if len(populated) == 1 && r.Cell(0) != "" && !isPartNoHeader(r.Cell(0)) {
				return convert.HeaderUpdate{Title: r.Cell(0)}, true
			}
			return convert.HeaderUpdate{}, false
		},
		Data: func(r convert.Row, _ *convert.SectionState) bool {
			return r.Cell(0) != "" && !isPartNoHeader(r.Cell(0))
		},
		Extract: func(r convert.Row, st *convert.SectionState) []model.Record {
			rec := model.NewRecord()
			rec.ID = r.Cell(0)
			rec.Title = st.Title
			rec.Description = r.Cell(1)
			rec.Price = convert.ParsePrice(r.Cell(3))
			if v := r.Cell(5); v != "" {
				rec.SetAttr("Spares MRP Per Number in CL", convert.CoerceNumber(v))
			}
			if v := r.Cell(6); v != "" {
				rec.SetAttr("Spares MRP Per Number in SZL", convert.CoerceNumber(v))
			}
			return []model.Record{rec}
		},
	}
}

func isPartNoHeader(cell string) bool {
	return strings.Contains(strings.ToLower(cell), "part no")
}
