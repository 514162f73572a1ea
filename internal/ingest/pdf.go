package ingest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/skuforge/skuforge/internal/model"
)

// PDFSource reads PDFs whose catalog has no usable table structure and
// must be scanned as raw text lines. Each non-empty line becomes a
// one-cell row; the textscan profile consumes that shape. Structured
// tables should instead be converted to CSV by the dedicated table
// extractor upstream.
type PDFSource struct{}

func (s *PDFSource) Name() string { return "pdf" }

func (s *PDFSource) CanHandle(path string) bool {
	return hasExt(path, ".pdf")
}

func (s *PDFSource) Read(path string) (*model.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	table := &model.RawTable{}
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		for _, line := range strings.Split(pageText(ctx, pageNr), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				table.Rows = append(table.Rows, []any{line})
			}
		}
	}
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("no text content found in PDF")
	}
	return table, nil
}

// pageText extracts the text of one page from its content stream.
func pageText(ctx *pdfmodel.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContentStream(data)
}

// textFromContentStream walks PDF content stream operators and collects
// the text-showing ones. Positioning operators become line breaks so
// the catalog's visual lines survive.
func textFromContentStream(data []byte) string {
	var sb strings.Builder
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")),
			bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// pdfStringRe matches PDF string literals: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// decodePDFString resolves the basic PDF escape sequences.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
			switch raw[i] {
			case 'n':
				sb.WriteByte('\n')
			case 'r', 't':
				sb.WriteByte(' ')
			case '(', ')', '\\':
				sb.WriteByte(raw[i])
			default:
				sb.WriteByte(raw[i])
			}
			continue
		}
		sb.WriteByte(raw[i])
	}
	return sb.String()
}
