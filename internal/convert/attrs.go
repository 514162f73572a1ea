package convert

import "github.com/skuforge/skuforge/internal/model"

// FieldMap names the in-band column headers that feed canonical record
// fields in header-driven formats. Every other header becomes an
// attribute key as-is (normalized).
type FieldMap struct {
	ID          []string // Headers whose cell is the identifier
	Description []string // Headers whose cell is the description
	Price       []string // Headers whose cell is the price
}

func headerIn(header string, set []string) bool {
	for _, h := range set {
		if h == header {
			return true
		}
	}
	return false
}

// CollectByHeaders maps a data row's populated cells positionally onto
// the table's own column headers: canonical headers fill the record's
// fields, everything else lands in the attribute map under the
// normalized header text. Duplicate keys overwrite. Cells beyond the
// header count are ignored.
func CollectByHeaders(r Row, headers []string, fm FieldMap) model.Record {
	rec := model.NewRecord()
	for i, cell := range r.NonEmpty() {
		if i >= len(headers) {
			break
		}
		key := NormalizeKey(headers[i])
		value := NormalizeCell(cell)
		switch {
		case headerIn(key, fm.ID):
			rec.ID = value
		case headerIn(key, fm.Description):
			rec.Description = value
		case headerIn(key, fm.Price):
			rec.Price = ParsePrice(value)
		default:
			rec.SetAttr(key, value)
		}
	}
	return rec
}
