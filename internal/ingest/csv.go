package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/skuforge/skuforge/internal/model"
)

// CSVSource reads extractor-produced CSV files. These files are rough:
// ragged row lengths, lazy quoting, and an occasional UTF-8 BOM, so the
// reader is configured to tolerate all three.
type CSVSource struct{}

func (s *CSVSource) Name() string { return "csv" }

func (s *CSVSource) CanHandle(path string) bool {
	return hasExt(path, ".csv")
}

func (s *CSVSource) Read(path string) (*model.RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCSV(data)
}

// ParseCSV parses CSV bytes into a raw table, preserving per-row
// lengths exactly as found.
func ParseCSV(data []byte) (*model.RawTable, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	table := &model.RawTable{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row := make([]any, len(record))
		for i, cell := range record {
			row[i] = cell
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
