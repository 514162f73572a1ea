// Package ingest turns source documents into raw tables. It is the
// boundary to the upstream extraction collaborators: everything past
// here is loosely typed rows, with no assumptions about column counts.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/skuforge/skuforge/internal/model"
)

// Source reads one document kind into a raw table.
type Source interface {
	// Name identifies the source kind in error messages.
	Name() string

	// CanHandle reports whether this source reads the given path.
	CanHandle(path string) bool

	// Read produces the document's raw rows. Rows may be ragged and
	// cells may be nil.
	Read(path string) (*model.RawTable, error)
}

// Open reads a document with the first source that handles its
// extension. Unknown document kinds are an error, not a guess.
func Open(path string) (*model.RawTable, error) {
	for _, s := range builtinSources {
		if s.CanHandle(path) {
			t, err := s.Read(path)
			if err != nil {
				return nil, fmt.Errorf("%s: read %s: %w", s.Name(), path, err)
			}
			t.Source = path
			return t, nil
		}
	}
	return nil, fmt.Errorf("no reader for %s", path)
}

var builtinSources = []Source{
	&CSVSource{},
	&HTMLSource{},
	&PDFSource{},
	&TextSource{},
}

func hasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
