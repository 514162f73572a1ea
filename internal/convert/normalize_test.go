package convert

import "testing"

func TestNormalizeRow_PreservesLength(t *testing.T) {
	raw := []any{nil, "  hello ", 42, 3.5, nil, ""}
	got := NormalizeRow(raw)

	if len(got) != len(raw) {
		t.Fatalf("Expected %d cells, got %d", len(raw), len(got))
	}

	want := []string{"", "hello", "42", "3.5", "", ""}
	for i, cell := range got {
		if cell != want[i] {
			t.Errorf("Cell %d: expected %q, got %q", i, want[i], cell)
		}
	}
}

func TestNormalizeRow_Idempotent(t *testing.T) {
	raw := []any{" spaced ", "line\rwith\rreturns", "`quoted`", nil, 101}
	once := NormalizeRow(raw)

	again := make([]any, len(once))
	for i, c := range once {
		again[i] = c
	}
	twice := NormalizeRow(again)

	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("Cell %d not idempotent: %q then %q", i, once[i], twice[i])
		}
	}
}

func TestNormalizeCell_StripsArtifacts(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"M.R.P.\rPer Unit", "M.R.P. Per Unit"},
		{"`1,250", "1,250"},
		{"()", ""},
		{"  \t ", ""},
		{nil, ""},
		{float64(101), "101"},
		{float64(12.5), "12.5"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := NormalizeCell(tt.in); got != tt.want {
			t.Errorf("NormalizeCell(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestNormalizeKey_CollapsesWhitespace(t *testing.T) {
	if got := NormalizeKey("M.R.P. (`)\rPer  Unit"); got != "M.R.P. () Per Unit" {
		t.Errorf("Expected 'M.R.P. () Per Unit', got %q", got)
	}
}
