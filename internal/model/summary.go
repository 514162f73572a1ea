package model

// DocumentSummary is the per-document conversion outcome reported to
// the user: either a record count or the failure reason, never both.
type DocumentSummary struct {
	Source      string `json:"source"`                 // Document path or URL
	Profile     string `json:"profile,omitempty"`      // Matched format profile name
	Records     int    `json:"records"`                // Records emitted
	RowsDropped int    `json:"rows_dropped"`           // Rows classified as noise or rejected
	Artifact    string `json:"artifact,omitempty"`     // Path of the written JSON artifact
	Err         error  `json:"-"`                      // Failure, if any (unsupported format, ingest error)
}

// Failed reports whether the document produced no artifact.
func (s *DocumentSummary) Failed() bool {
	return s.Err != nil
}
