package convert

import "strings"

// Classify determines the role of a normalized row under a profile.
// Rules apply in priority order, first match wins:
//
//  1. Noise — all cells empty, denylisted content, an over-long cell,
//     or a lone numeric token (page-number artifact).
//  2. SectionHeader — the profile's header predicate matches.
//  3. DataRow — the profile's data predicate matches.
//  4. Continuation — the profile's continuation predicate matches.
//
// Anything else is Noise: a silent drop, never an error.
func Classify(r Row, st *SectionState, p *Profile, shared NoiseFilter) Role {
	noise := shared
	if p.Noise != nil {
		noise = *p.Noise
	}
	if noise.Matches(r) {
		return RoleNoise
	}
	if p.Header != nil {
		if _, ok := p.Header(r); ok {
			return RoleSectionHeader
		}
	}
	if p.Data != nil && p.Data(r, st) {
		return RoleDataRow
	}
	if p.Continuation != nil && p.Continuation(r) {
		return RoleContinuation
	}
	return RoleNoise
}

// Matches reports whether the row fails one of the noise rules.
func (f NoiseFilter) Matches(r Row) bool {
	populated := r.NonEmpty()
	if len(populated) == 0 {
		return true
	}
	for _, cell := range r.Cells {
		if f.MaxCellLen > 0 && len(cell) >= f.MaxCellLen {
			return true
		}
		lower := strings.ToLower(cell)
		for _, word := range f.Denylist {
			if word != "" && strings.Contains(lower, strings.ToLower(word)) {
				return true
			}
		}
	}
	// A lone numeric cell with nothing else is a page-number artifact.
	if len(populated) == 1 && IsInteger(populated[0]) {
		return true
	}
	return false
}
