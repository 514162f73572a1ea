package profiles

import (
	"errors"
	"testing"

	"github.com/skuforge/skuforge/internal/convert"
	"github.com/skuforge/skuforge/internal/model"
)

func sigFor(rows [][]any) convert.Signature {
	return convert.ComputeSignature(&model.RawTable{Rows: rows})
}

func TestRegistry_FailsClosed(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Find(sigFor([][]any{
		{"Item", "Qty", "Notes"},
		{"Paper clips", "500", "box"},
	}))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}

	if _, err := reg.Find(sigFor(nil)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat for an empty table, got %v", err)
	}
}

func TestRegistry_SelectsBySignature(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name string
		rows [][]any
		want string
	}{
		{
			"sectioned fingerprint",
			[][]any{{"PROBLEMSOLUTION", "", ""}},
			"sectioned",
		},
		{
			"blocked needs width",
			[][]any{{"Part No", "Desc", "Qty", "MRP", "", "CL", "SZL"}},
			"blocked",
		},
		{
			"token stream via dimensions",
			[][]any{{"DWC 301, 85 x 60 x 40, 1,250"}},
			"tokenstream",
		},
		{
			"token stream via cable size",
			[][]any{{"2.5 sq.mm, DWC 405 995"}},
			"tokenstream",
		},
		{
			"serial four columns",
			[][]any{{"Sl.No", "Category", "Model", "Bare Tool"}},
			"serial",
		},
		{
			"headered via cat number",
			[][]any{{"Type", "Cat. No.", "M.R.P. Per Unit"}},
			"headered",
		},
		{
			"variants via rated current",
			[][]any{{"Description", "Rated Current", "3P Cat", "MRP", "4P Cat"}},
			"variants",
		},
		{
			"text scan single column",
			[][]any{{"1 LOCTITE 401 Instant Adhesive 20g 425"}},
			"textscan",
		},
	}
	for _, tt := range tests {
		p, err := reg.Find(sigFor(tt.rows))
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if p.Name != tt.want {
			t.Errorf("%s: expected profile %q, got %q", tt.name, tt.want, p.Name)
		}
	}
}

func TestRegistry_NarrowPartNoTableUnsupported(t *testing.T) {
	// "Part No" alone is ambiguous; without the wide variant columns the
	// dispatcher must refuse rather than guess.
	reg := NewRegistry()
	_, err := reg.Find(sigFor([][]any{{"Part No", "Desc", "MRP"}}))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	want := []string{"sectioned", "blocked", "tokenstream", "serial", "headered", "variants", "textscan"}
	got := NewRegistry().Names()
	if len(got) != len(want) {
		t.Fatalf("Expected %d profiles, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
