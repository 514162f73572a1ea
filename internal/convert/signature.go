package convert

import (
	"strings"

	"github.com/skuforge/skuforge/internal/model"
)

// signatureScanRows bounds how much of a table the signature looks at.
// Format markers (header keywords, column shape) appear early; scanning
// everything would only slow down rejection of huge tables.
const signatureScanRows = 60

// Signature is the lightweight structural fingerprint of a table,
// computed once per document and matched against each profile.
type Signature struct {
	Rows             int    // Total row count
	MaxColumns       int    // Widest row length
	PopulatedColumns int    // Largest count of non-empty cells in any scanned row
	HasDimensions    bool   // A scanned cell carries an "N x N x N" triple
	head             string // Lowercased scanned cell text, for keyword checks
}

// Contains reports whether the scanned head of the table carries the
// keyword (case-insensitive substring match).
func (s Signature) Contains(keyword string) bool {
	return keyword != "" && strings.Contains(s.head, strings.ToLower(keyword))
}

// ComputeSignature fingerprints a raw table.
func ComputeSignature(t *model.RawTable) Signature {
	sig := Signature{Rows: len(t.Rows)}
	var head strings.Builder
	for i, raw := range t.Rows {
		if len(raw) > sig.MaxColumns {
			sig.MaxColumns = len(raw)
		}
		if i >= signatureScanRows {
			continue
		}
		populated := 0
		for _, c := range NormalizeRow(raw) {
			if c == "" {
				continue
			}
			populated++
			if !sig.HasDimensions && HasDimensionToken(c) {
				sig.HasDimensions = true
			}
			head.WriteString(strings.ToLower(c))
			head.WriteByte('\n')
		}
		if populated > sig.PopulatedColumns {
			sig.PopulatedColumns = populated
		}
	}
	sig.head = head.String()
	return sig
}
