package profiles

import (
	"strings"

	"github.com/skuforge/skuforge/internal/convert"
	"github.com/skuforge/skuforge/internal/model"
)

// TokenStream handles the layout where one cell (or a whole row joined
// back together) packs several semantic tokens separated by commas:
// cable sizes, dimension triples, packing quantities, and a catalog
// number with a trailing price. Any row that carries no data marker
// becomes the running section title.
func TokenStream() *convert.Profile {
	return &convert.Profile{
		Name: "tokenstream",
		Match: func(sig convert.Signature) bool {
			return sig.HasDimensions || sig.Contains("sq.mm")
		},
		Header: func(r convert.Row) (convert.HeaderUpdate, bool) {
			if isTokenDataLine(r.Line(",")) {
				return convert.HeaderUpdate{}, false
			}
			return convert.HeaderUpdate{Title: r.Line(",")}, true
		},
		Data: func(r convert.Row, _ *convert.SectionState) bool {
			return isTokenDataLine(r.Line(","))
		},
		Extract: func(r convert.Row, st *convert.SectionState) []model.Record {
			rec := model.NewRecord()
			rec.Title = st.Title
			for _, part := range strings.Split(r.Line(","), ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				switch {
				case strings.Contains(part, "sq.mm"):
					rec.SetAttr("Cable Size", part)
				case convert.HasDimensionToken(part):
					if dims, ok := convert.ParseDimensions(part); ok {
						rec.SetAttr("Dimensions", dims)
					}
				case convert.IsInteger(part):
					rec.SetAttr("Packing Quantity", part)
				default:
					id, price := convert.SplitCatalogPrice(part)
					rec.ID = id
					rec.Price = price
				}
			}
			return []model.Record{rec}
		},
	}
}

func isTokenDataLine(line string) bool {
	return convert.HasDimensionToken(line) || strings.Contains(line, "sq.mm")
}
