package convert

// SectionState is the per-table section context. It is created empty at
// the start of each table and mutated only by section header rows, so
// processing two documents in any order or concurrently yields
// identical per-document output.
type SectionState struct {
	Title   string   // Current section/category title
	Columns []string // In-band column headers, for header-driven formats
}

// HeaderUpdate is what a section header row contributes to the state.
// Either field may be empty; empty fields leave the corresponding state
// untouched.
type HeaderUpdate struct {
	Title   string
	Columns []string
}

// Apply transitions the state on a section header row.
func (s *SectionState) Apply(u HeaderUpdate) {
	if u.Title != "" {
		s.Title = u.Title
	}
	if len(u.Columns) > 0 {
		s.Columns = u.Columns
	}
}
