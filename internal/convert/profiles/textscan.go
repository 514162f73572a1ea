package profiles

import (
	"regexp"
	"strings"

	"github.com/skuforge/skuforge/internal/convert"
	"github.com/skuforge/skuforge/internal/model"
)

// skuLineRe recognizes one adhesive-catalog entry in a raw text line:
// numeric id, a LOCTITE title/description run, a pack-size token with
// its unit, and a trailing price with optional thousands separator.
var skuLineRe = regexp.MustCompile(
	`(\d+)\s+(LOCTITE\S*\s.*?)\s*(\d+\s*(?:ml|g|oz|kg|lb)|\d+\s*IN\s*x\s*\d+\s*FT|Kit)\s+(\d+(?:,\d+)*)\b`)

// TextScan handles documents that reach the engine as plain text lines
// (one cell per row) rather than as columns — the extractor found no
// table structure to latch onto, but the line grammar itself is
// regular enough to scan.
func TextScan() *convert.Profile {
	return &convert.Profile{
		Name: "textscan",
		Match: func(sig convert.Signature) bool {
			return sig.MaxColumns == 1 && sig.Contains("loctite")
		},
		// Raw text lines legitimately run long and can pack several
		// entries each, so the cell-length cap does not apply here;
		// the denylist still drops watermark lines.
		Noise: &convert.NoiseFilter{
			Denylist: model.DefaultConfig().Noise.Denylist,
		},
		Data: func(r convert.Row, _ *convert.SectionState) bool {
			return skuLineRe.MatchString(r.Cell(0))
		},
		Extract: func(r convert.Row, _ *convert.SectionState) []model.Record {
			var records []model.Record
			for _, m := range skuLineRe.FindAllStringSubmatch(r.Cell(0), -1) {
				title, description := splitTitleWords(m[2], 2)
				rec := model.NewRecord()
				rec.ID = m[1]
				rec.Title = title
				rec.Description = description
				rec.Price = convert.ParsePrice(m[4])
				rec.SetAttr("Pack Size", strings.TrimSpace(m[3]))
				records = append(records, rec)
			}
			return records
		},
	}
}

// splitTitleWords keeps the first n words as the title and the rest as
// the description.
func splitTitleWords(s string, n int) (string, string) {
	words := strings.Fields(s)
	if len(words) <= n {
		return strings.Join(words, " "), ""
	}
	return strings.Join(words[:n], " "), strings.Join(words[n:], " ")
}
