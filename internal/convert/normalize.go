package convert

import (
	"strconv"
	"strings"
	"unicode"
)

// NormalizeRow coerces a raw row of cells of unknown type into a
// same-length slice of cleaned strings. Nil and unrecognized values
// become "", numbers become their decimal form, strings are cleaned of
// extraction artifacts. Normalizing an already-normalized row is a
// no-op.
func NormalizeRow(cells []any) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = NormalizeCell(c)
	}
	return out
}

// NormalizeCell converts one raw cell value to its cleaned string form.
func NormalizeCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return cleanCell(c)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32)
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case bool:
		return strconv.FormatBool(c)
	default:
		return ""
	}
}

// cleanCell strips the artifacts the upstream table extractor leaves in
// cells: carriage returns, stray backticks, control characters, and the
// literal "()" filler some tables carry in blank cells.
func cleanCell(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\r' || r == '\n' || r == '\t':
			b.WriteRune(' ')
		case r == '`':
			// dropped
		case unicode.IsControl(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "()" {
		return ""
	}
	return out
}

// NormalizeKey cleans a string for use as an attribute key: artifact
// removal plus whitespace collapsing, so in-band column headers become
// stable map keys.
func NormalizeKey(s string) string {
	return strings.Join(strings.Fields(cleanCell(s)), " ")
}
