package ingest

import (
	"bufio"
	"os"
	"strings"

	"github.com/skuforge/skuforge/internal/model"
)

// TextSource reads plain text exports line by line, one cell per row —
// the same shape the PDF text scan produces, so the two share profiles.
type TextSource struct{}

func (s *TextSource) Name() string { return "text" }

func (s *TextSource) CanHandle(path string) bool {
	return hasExt(path, ".txt")
}

func (s *TextSource) Read(path string) (*model.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table := &model.RawTable{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			table.Rows = append(table.Rows, []any{line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
