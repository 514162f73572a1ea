package convert

import "github.com/skuforge/skuforge/internal/model"

// Engine walks one table's rows under a bound profile: normalize,
// classify, track the section context, extract fields and attributes,
// and assemble canonical records. A run is pure and single-threaded;
// all state lives in the run itself, so documents can be converted in
// parallel without locks.
type Engine struct {
	profile *Profile
	noise   NoiseFilter
}

// NewEngine binds a profile and the shared noise thresholds.
func NewEngine(p *Profile, noise NoiseFilter) *Engine {
	return &Engine{profile: p, noise: noise}
}

// Result is one table's conversion outcome.
type Result struct {
	Records []model.Record
	Dropped int // Rows classified as noise plus records rejected at the id gate
}

// Run converts a raw table into canonical records.
func (e *Engine) Run(t *model.RawTable) Result {
	var res Result
	state := &SectionState{}

	start := e.profile.StartRow
	if start > len(t.Rows) {
		start = len(t.Rows)
	}

	for i, raw := range t.Rows[start:] {
		row := Row{Index: start + i, Cells: NormalizeRow(raw)}

		switch Classify(row, state, e.profile, e.noise) {
		case RoleSectionHeader:
			if update, ok := e.profile.Header(row); ok {
				state.Apply(update)
			}

		case RoleDataRow:
			recs := e.profile.Extract(row, state)
			if len(recs) == 0 {
				// Malformed under this profile (missing designated
				// columns): dropped whole, no partial record.
				res.Dropped++
			}
			for _, rec := range recs {
				// Single universal acceptance gate: a record without
				// an identifier is never emitted.
				if rec.Accepted() {
					if rec.Attributes == nil {
						rec.Attributes = model.Attributes{}
					}
					res.Records = append(res.Records, rec)
				} else {
					res.Dropped++
				}
			}

		case RoleContinuation:
			// Merges into the latest record; never creates one.
			if n := len(res.Records); n > 0 && e.profile.Merge != nil {
				e.profile.Merge(row, &res.Records[n-1])
			} else {
				res.Dropped++
			}

		default:
			if e.profile.CloseOnBlank && len(row.NonEmpty()) == 0 {
				state.Columns = nil
			}
			res.Dropped++
		}
	}

	return res
}
