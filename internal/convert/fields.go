package convert

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/skuforge/skuforge/internal/model"
)

var (
	dimensionRe = regexp.MustCompile(`(\d+)\s*[xX]\s*(\d+)\s*[xX]\s*(\d+)`)
	digitsRe    = regexp.MustCompile(`^\d+$`)
)

// priceGlyphs are the currency artifacts seen around price cells in the
// source corpus: rupee signs, the backtick-rendered glyph, trailing
// "/-", and footnote asterisks.
var priceGlyphs = []string{"₹", "`", "*", "/-", "rs.", "Rs.", "̀"}

// ParsePrice parses a price cell into a number. Thousands separators
// and currency glyphs are stripped first. Returns nil when the
// remainder is not a decimal number; a price is never silently
// defaulted to zero. Parsing is idempotent: an already-numeric string
// parses to the same value.
func ParsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, g := range priceGlyphs {
		s = strings.ReplaceAll(s, g, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// IsInteger reports whether s is a pure digit string.
func IsInteger(s string) bool {
	return digitsRe.MatchString(s)
}

// HasDimensionToken reports whether s carries an embedded "N x N x N"
// dimension triple.
func HasDimensionToken(s string) bool {
	return dimensionRe.MatchString(s)
}

// ParseDimensions extracts a dimension triple into a nested attribute
// map. Returns false when no triple is present.
func ParseDimensions(s string) (model.Attributes, bool) {
	m := dimensionRe.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	return model.Attributes{
		"Length": m[1],
		"Width":  m[2],
		"Height": m[3],
	}, true
}

// SplitCatalogPrice splits a mixed token like "CAT 123-X 1,250" into a
// catalog identifier and a trailing price. The trailing whitespace
// token is consumed only when it actually parses as a price; otherwise
// the whole string is the identifier and the price is nil.
func SplitCatalogPrice(s string) (string, *float64) {
	s = strings.TrimSpace(s)
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return s, nil
	}
	price := ParsePrice(fields[len(fields)-1])
	if price == nil {
		return s, nil
	}
	return strings.Join(fields[:len(fields)-1], " "), price
}

// CoerceNumber returns the numeric form of a cell when it parses as a
// number (after separator stripping) and the trimmed string otherwise.
// Used for attributes the profile marks as price-like.
func CoerceNumber(s string) any {
	if v := ParsePrice(s); v != nil {
		return *v
	}
	return strings.TrimSpace(s)
}
