package profiles

import (
	"strings"

	"github.com/skuforge/skuforge/internal/convert"
	"github.com/skuforge/skuforge/internal/model"
)

// Variants handles the switchgear layout whose wide rows encode two
// catalog variants at once: a shared title/description and rated
// current, with separate 3-pole and 4-pole catalog numbers. Narrow rows
// are plain one-record entries with a pack attribute. A wide-row
// variant whose catalog cell is blank is skipped, not emitted empty.
func Variants() *convert.Profile {
	return &convert.Profile{
		Name: "variants",
		Match: func(sig convert.Signature) bool {
			return sig.Contains("rated current")
		},
		Data: func(r convert.Row, _ *convert.SectionState) bool {
			return len(r.NonEmpty()) >= 2
		},
		Extract: func(r convert.Row, _ *convert.SectionState) []model.Record {
			if len(r.Cells) >= 5 {
				return extractPoleVariants(r)
			}
			return extractNarrow(r)
		},
	}
}

// extractPoleVariants splits one wide row into up to two records, one
// per pole count.
func extractPoleVariants(r convert.Row) []model.Record {
	title, description := splitTitle(r.Cell(0))
	rated := r.Cell(1)

	var records []model.Record
	for _, v := range []struct {
		idCol    int
		poleType string
	}{
		{2, "3P"},
		{4, "4P"},
	} {
		id := strings.ReplaceAll(r.Cell(v.idCol), " ", "")
		if id == "" {
			continue
		}
		rec := model.NewRecord()
		rec.ID = id
		rec.Title = title
		rec.Description = description
		if rated != "" {
			rec.SetAttr("Rated Current", rated)
		}
		rec.SetAttr("Type", v.poleType)
		records = append(records, rec)
	}
	return records
}

// extractNarrow parses the 2–4 column rows: catalog number, description
// and a pack column.
func extractNarrow(r convert.Row) []model.Record {
	rec := model.NewRecord()
	rec.ID = strings.ReplaceAll(r.Cell(0), " ", "")
	rec.Description = r.Cell(1)
	if pack := r.Cell(3); pack != "" {
		rec.SetAttr("Pack", pack)
	}
	return []model.Record{rec}
}

// splitTitle separates "Title, description..." cells on the first
// comma; cells without a comma are all title.
func splitTitle(s string) (string, string) {
	if i := strings.Index(s, ","); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return s, ""
}
