package convert

// Role is the classified role of a table row.
type Role int

const (
	RoleNoise         Role = iota // Dropped silently: empty, denylisted, artifact
	RoleSectionHeader             // Sets the section context for following rows
	RoleDataRow                   // Yields one or more records
	RoleContinuation              // Contributes attributes to the previous record
)

// String returns the role name for diagnostics.
func (r Role) String() string {
	switch r {
	case RoleSectionHeader:
		return "section_header"
	case RoleDataRow:
		return "data_row"
	case RoleContinuation:
		return "continuation"
	default:
		return "noise"
	}
}

// Row is one normalized table row: trimmed string cells plus the
// positional index in the source table.
type Row struct {
	Index int
	Cells []string
}

// Cell returns the cell at position i, or "" when the row is too short.
// Profiles use this instead of indexing so ragged rows never panic.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// NonEmpty returns the populated cells in order.
func (r Row) NonEmpty() []string {
	var out []string
	for _, c := range r.Cells {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Line joins the populated cells with the given separator. The token
// stream profile works on this joined form rather than on columns.
func (r Row) Line(sep string) string {
	out := ""
	for _, c := range r.NonEmpty() {
		if out != "" {
			out += sep
		}
		out += c
	}
	return out
}
