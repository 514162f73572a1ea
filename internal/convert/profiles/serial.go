package profiles

import (
	"github.com/skuforge/skuforge/internal/convert"
	"github.com/skuforge/skuforge/internal/model"
)

// Serial handles the four-column tool catalog: serial number, product
// category, model name, bare-tool part number. The category column is
// sparse — it carries the running title and stays empty on rows that
// inherit it. The format publishes no prices; price is always null.
func Serial() *convert.Profile {
	return &convert.Profile{
		Name: "serial",
		Match: func(sig convert.Signature) bool {
			return sig.MaxColumns == 4 &&
				(sig.Contains("sl.no") || sig.Contains("bare tool"))
		},
		Data: func(r convert.Row, _ *convert.SectionState) bool {
			return convert.IsInteger(r.Cell(0))
		},
		Extract: func(r convert.Row, st *convert.SectionState) []model.Record {
			// The title travels in-band on data rows rather than on
			// dedicated header rows.
			if category := r.Cell(1); category != "" {
				st.Apply(convert.HeaderUpdate{Title: category})
			}
			rec := model.NewRecord()
			rec.ID = r.Cell(0)
			rec.Title = st.Title
			rec.Description = r.Cell(2)
			rec.Price = nil // Not provided by this format
			if part := r.Cell(3); part != "" {
				rec.SetAttr("Bare Tool Part No", part)
			}
			return []model.Record{rec}
		},
	}
}
