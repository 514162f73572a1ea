// Package profiles holds the built-in format profiles and the registry
// that binds exactly one of them to each document.
package profiles

import (
	"errors"

	"github.com/skuforge/skuforge/internal/convert"
)

// ErrUnsupportedFormat is returned when no profile's structural
// signature matches a table. The dispatcher fails closed: it never
// guesses a best-effort profile for an unrecognized layout.
var ErrUnsupportedFormat = errors.New("unsupported table format")

// Registry manages the known format profiles.
type Registry struct {
	profiles []*convert.Profile
}

// NewRegistry creates a registry with all built-in profiles.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(Sectioned())
	r.Register(Blocked())
	r.Register(TokenStream())
	r.Register(Serial())
	r.Register(Headered())
	r.Register(Variants())
	r.Register(TextScan())
	return r
}

// Register appends a profile. Matching follows registration order,
// first match wins.
func (r *Registry) Register(p *convert.Profile) {
	r.profiles = append(r.profiles, p)
}

// Find selects the profile for a table signature, or
// ErrUnsupportedFormat when nothing matches.
func (r *Registry) Find(sig convert.Signature) (*convert.Profile, error) {
	for _, p := range r.profiles {
		if p.Match(sig) {
			return p, nil
		}
	}
	return nil, ErrUnsupportedFormat
}

// Names lists the registered profile names in match order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		names = append(names, p.Name)
	}
	return names
}
