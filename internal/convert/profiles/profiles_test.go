package profiles

import (
	"strings"
	"testing"

	"github.com/skuforge/skuforge/internal/convert"
	"github.com/skuforge/skuforge/internal/model"
)

func sharedNoise() convert.NoiseFilter {
	return convert.NoiseFilterFromConfig(model.DefaultConfig().Noise)
}

func runProfile(t *testing.T, p *convert.Profile, rows [][]any) convert.Result {
	t.Helper()
	return convert.NewEngine(p, sharedNoise()).Run(&model.RawTable{Rows: rows})
}

func TestSectioned(t *testing.T) {
	// The catalog body begins after a fixed front-matter block.
	rows := make([][]any, 25)
	rows = append(rows,
		[]any{"", "ADHESIVES", ""},
		[]any{"101", "Threadlocker Blue", "10 Pcs", "1,250"},
		[]any{"", "", "50 ml Bottle"},
		[]any{"102", "Gasket Maker", "", "495"},
	)

	res := runProfile(t, Sectioned(), rows)

	if len(res.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(res.Records))
	}
	first := res.Records[0]
	if first.ID != "101" || first.Title != "ADHESIVES" || first.Description != "Threadlocker Blue" {
		t.Errorf("Unexpected first record: %+v", first)
	}
	if first.Price == nil || *first.Price != 1250 {
		t.Errorf("Expected price 1250, got %v", first.Price)
	}
	// The continuation row replaces the pack size on the open record.
	if got := first.Attributes["Pack Size"]; got != "50 ml Bottle" {
		t.Errorf("Expected continuation pack size, got %v", got)
	}

	second := res.Records[1]
	if second.ID != "102" || second.Title != "ADHESIVES" {
		t.Errorf("Unexpected second record: %+v", second)
	}
	if _, ok := second.Attributes["Pack Size"]; ok {
		t.Error("Expected no pack size on the second record")
	}
}

func TestSectioned_SkipsFrontMatter(t *testing.T) {
	rows := [][]any{{"999", "Looks like data but sits in front matter", "", "100"}}
	res := runProfile(t, Sectioned(), rows)
	if len(res.Records) != 0 {
		t.Fatalf("Expected front-matter rows skipped, got %d records", len(res.Records))
	}
}

func TestBlocked(t *testing.T) {
	rows := [][]any{
		{"HAMMER DRILLS", "", "", "", "", "", ""},
		{"Part No", "Description", "Qty", "MRP", "", "CL", "SZL"},
		{"DW088", "Laser Level", "1", "12,500", "", "450", "N/A"},
	}

	res := runProfile(t, Blocked(), rows)

	if len(res.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(res.Records))
	}
	rec := res.Records[0]
	if rec.ID != "DW088" || rec.Title != "HAMMER DRILLS" || rec.Description != "Laser Level" {
		t.Errorf("Unexpected record: %+v", rec)
	}
	if rec.Price == nil || *rec.Price != 12500 {
		t.Errorf("Expected price 12500, got %v", rec.Price)
	}
	// Numeric spares prices coerce to numbers, non-numeric stay text.
	if got := rec.Attributes["Spares MRP Per Number in CL"]; got != float64(450) {
		t.Errorf("Expected coerced 450, got %v (%T)", got, got)
	}
	if got := rec.Attributes["Spares MRP Per Number in SZL"]; got != "N/A" {
		t.Errorf("Expected 'N/A', got %v", got)
	}
}

func TestTokenStream(t *testing.T) {
	rows := [][]any{
		{"PVC Junction Boxes"},
		{"2.5 sq.mm", "85 x 60 x 40", "12", "DWC 405 995"},
	}

	res := runProfile(t, TokenStream(), rows)

	if len(res.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(res.Records))
	}
	rec := res.Records[0]
	if rec.ID != "DWC 405" {
		t.Errorf("Expected id 'DWC 405', got %q", rec.ID)
	}
	if rec.Title != "PVC Junction Boxes" {
		t.Errorf("Expected the preceding line as title, got %q", rec.Title)
	}
	if rec.Price == nil || *rec.Price != 995 {
		t.Errorf("Expected price 995, got %v", rec.Price)
	}
	if got := rec.Attributes["Cable Size"]; got != "2.5 sq.mm" {
		t.Errorf("Expected cable size, got %v", got)
	}
	if got := rec.Attributes["Packing Quantity"]; got != "12" {
		t.Errorf("Expected packing quantity '12', got %v", got)
	}
	dims, ok := rec.Attributes["Dimensions"].(model.Attributes)
	if !ok {
		t.Fatalf("Expected nested dimensions map, got %T", rec.Attributes["Dimensions"])
	}
	if dims["Length"] != "85" || dims["Width"] != "60" || dims["Height"] != "40" {
		t.Errorf("Unexpected dimensions: %v", dims)
	}
}

func TestSerial(t *testing.T) {
	rows := [][]any{
		{"Sl.No", "Category", "Model", "Bare Tool Part No"},
		{"1", "Cordless Drills", "DCD776", "DCD776B"},
		{"2", "", "DCD796", ""},
	}

	res := runProfile(t, Serial(), rows)

	if len(res.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(res.Records))
	}
	first, second := res.Records[0], res.Records[1]
	if first.ID != "1" || first.Title != "Cordless Drills" || first.Description != "DCD776" {
		t.Errorf("Unexpected first record: %+v", first)
	}
	if got := first.Attributes["Bare Tool Part No"]; got != "DCD776B" {
		t.Errorf("Expected bare tool part, got %v", got)
	}
	// A blank category inherits the running title.
	if second.Title != "Cordless Drills" {
		t.Errorf("Expected inherited title, got %q", second.Title)
	}
	if first.Price != nil || second.Price != nil {
		t.Error("Expected null prices: the format publishes none")
	}
	if _, ok := second.Attributes["Bare Tool Part No"]; ok {
		t.Error("Expected no bare tool attribute on the second record")
	}
}

func TestHeadered(t *testing.T) {
	rows := [][]any{
		{"Fuse technical data", "", ""},
		{"Type", "Cat. No.", "Rating", "M.R.P. (`) Per Unit"},
		{"HRC Fuse Link", "FN-0632", "32A", "`145"},
	}

	res := runProfile(t, Headered(), rows)

	if len(res.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(res.Records))
	}
	rec := res.Records[0]
	if rec.ID != "FN-0632" || rec.Description != "HRC Fuse Link" {
		t.Errorf("Unexpected record: %+v", rec)
	}
	if rec.Price == nil || *rec.Price != 145 {
		t.Errorf("Expected price 145, got %v", rec.Price)
	}
	if got := rec.Attributes["Rating"]; got != "32A" {
		t.Errorf("Expected Rating attribute, got %v", got)
	}
}

func TestHeadered_BlankRowClosesSubTable(t *testing.T) {
	// Footers and notes after a sub-table must not map onto the stale
	// column headers once a blank row has closed the table.
	rows := [][]any{
		{"Type", "Cat. No.", "M.R.P. Per Unit"},
		{"HRC Fuse Link", "FN-0632", "145"},
		{"", "", ""},
		{"Prices subject to revision", "REV-2024", "see website"},
	}

	res := runProfile(t, Headered(), rows)

	if len(res.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d: %+v", len(res.Records), res.Records)
	}
	if res.Records[0].ID != "FN-0632" {
		t.Errorf("Unexpected record id %q", res.Records[0].ID)
	}
	// The blank row plus the footer row both drop.
	if res.Dropped != 2 {
		t.Errorf("Expected 2 dropped rows, got %d", res.Dropped)
	}
}

func TestHeadered_NewHeaderReopensSubTable(t *testing.T) {
	rows := [][]any{
		{"Type", "Cat. No.", "M.R.P. Per Unit"},
		{"HRC Fuse Link", "FN-0632", "145"},
		{"", "", ""},
		{"Type", "Cat. No.", "Rating"},
		{"DIN Fuse Base", "FB-0100", "63A"},
	}

	res := runProfile(t, Headered(), rows)

	if len(res.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(res.Records))
	}
	second := res.Records[1]
	if second.ID != "FB-0100" {
		t.Errorf("Unexpected second record id %q", second.ID)
	}
	// The second sub-table's own columns apply, not the first's.
	if got := second.Attributes["Rating"]; got != "63A" {
		t.Errorf("Expected Rating from the reopened table, got %v", got)
	}
}

func TestHeadered_RowsBeforeHeaderDrop(t *testing.T) {
	rows := [][]any{
		{"stray", "cells", "without", "columns"},
	}
	res := runProfile(t, Headered(), rows)
	if len(res.Records) != 0 {
		t.Fatalf("Expected no records before a header row, got %d", len(res.Records))
	}
	if res.Dropped != 1 {
		t.Errorf("Expected 1 dropped, got %d", res.Dropped)
	}
}

func TestVariants_WideRowSplits(t *testing.T) {
	rows := [][]any{
		{"MCCB, thermal magnetic release", "100A", "DZ 100 3P", "8,450", "DZ 100 4P"},
	}

	res := runProfile(t, Variants(), rows)

	if len(res.Records) != 2 {
		t.Fatalf("Expected one record per pole variant, got %d", len(res.Records))
	}
	three, four := res.Records[0], res.Records[1]
	if three.ID != "DZ1003P" || four.ID != "DZ1004P" {
		t.Errorf("Expected space-stripped ids, got %q and %q", three.ID, four.ID)
	}
	for _, rec := range res.Records {
		if rec.Title != "MCCB" || rec.Description != "thermal magnetic release" {
			t.Errorf("Unexpected title split: %+v", rec)
		}
		if got := rec.Attributes["Rated Current"]; got != "100A" {
			t.Errorf("Expected rated current, got %v", got)
		}
	}
	if three.Attributes["Type"] != "3P" || four.Attributes["Type"] != "4P" {
		t.Error("Expected pole type attributes on both variants")
	}
}

func TestVariants_BlankVariantSkipped(t *testing.T) {
	rows := [][]any{
		{"MCCB", "63A", "DZ 63 3P", "5,200", ""},
	}
	res := runProfile(t, Variants(), rows)

	if len(res.Records) != 1 {
		t.Fatalf("Expected exactly one record, got %d", len(res.Records))
	}
	if res.Records[0].Attributes["Type"] != "3P" {
		t.Errorf("Expected the populated variant, got %+v", res.Records[0])
	}
}

func TestVariants_NarrowRow(t *testing.T) {
	rows := [][]any{
		{"DZ 160", "Rotary handle", "", "2 Nos"},
	}
	res := runProfile(t, Variants(), rows)

	if len(res.Records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(res.Records))
	}
	rec := res.Records[0]
	if rec.ID != "DZ160" || rec.Description != "Rotary handle" {
		t.Errorf("Unexpected record: %+v", rec)
	}
	if got := rec.Attributes["Pack"]; got != "2 Nos" {
		t.Errorf("Expected pack attribute, got %v", got)
	}
}

func TestTextScan(t *testing.T) {
	rows := [][]any{
		{"Industrial adhesives"},
		{"1 LOCTITE 401 Instant Adhesive 20g 425"},
		{"2 LOCTITE 495 Super Bonder 50 ml 1,150"},
	}

	res := runProfile(t, TextScan(), rows)

	if len(res.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(res.Records))
	}
	first := res.Records[0]
	if first.ID != "1" || first.Title != "LOCTITE 401" || first.Description != "Instant Adhesive" {
		t.Errorf("Unexpected first record: %+v", first)
	}
	if got := first.Attributes["Pack Size"]; got != "20g" {
		t.Errorf("Expected pack size '20g', got %v", got)
	}
	if first.Price == nil || *first.Price != 425 {
		t.Errorf("Expected price 425, got %v", first.Price)
	}
	second := res.Records[1]
	if second.Price == nil || *second.Price != 1150 {
		t.Errorf("Expected price 1150, got %v", second.Price)
	}
	if got := second.Attributes["Pack Size"]; got != "50 ml" {
		t.Errorf("Expected pack size '50 ml', got %v", got)
	}
}

func TestTextScan_LongLinesNotCapped(t *testing.T) {
	// Raw text lines are whole visual lines and often run far past the
	// tabular cell-length threshold; they must still be scanned.
	line := "1 LOCTITE 577 " + strings.Repeat("Medium Strength ", 8) + "Thread Sealant 50 ml 1,150"
	if len(line) < 120 {
		t.Fatalf("Test line too short to exercise the cap: %d chars", len(line))
	}

	res := runProfile(t, TextScan(), [][]any{{line}})

	if len(res.Records) != 1 {
		t.Fatalf("Expected 1 record from the long line, got %d", len(res.Records))
	}
	rec := res.Records[0]
	if rec.ID != "1" || rec.Title != "LOCTITE 577" {
		t.Errorf("Unexpected record: %+v", rec)
	}
	if rec.Price == nil || *rec.Price != 1150 {
		t.Errorf("Expected price 1150, got %v", rec.Price)
	}
}

func TestTextScan_DenylistStillApplies(t *testing.T) {
	res := runProfile(t, TextScan(), [][]any{
		{"TEJEET TRADING CO - PRICE LIST"},
		{"1 LOCTITE 401 Instant Adhesive 20g 425"},
	})
	if len(res.Records) != 1 {
		t.Fatalf("Expected the watermark line dropped, got %d records", len(res.Records))
	}
}
