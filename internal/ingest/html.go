package ingest

import (
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/skuforge/skuforge/internal/model"
)

// HTMLSource reads price lists published as HTML pages: every <table>
// in the document contributes its <tr> rows, concatenated in document
// order (mirroring how the PDF extractor appends all pages into one
// table).
type HTMLSource struct{}

func (s *HTMLSource) Name() string { return "html" }

func (s *HTMLSource) CanHandle(path string) bool {
	return hasExt(path, ".html", ".htm")
}

func (s *HTMLSource) Read(path string) (*model.RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseHTML(string(data))
}

// ParseHTML extracts table rows from an HTML document.
func ParseHTML(content string) (*model.RawTable, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	table := &model.RawTable{}
	for _, tr := range findAll(doc, "tr") {
		var row []any
		for _, cell := range findAll(tr, "td", "th") {
			row = append(row, nodeText(cell))
		}
		if len(row) > 0 {
			table.Rows = append(table.Rows, row)
		}
	}
	return table, nil
}

// findAll collects element nodes with one of the given tag names, in
// document order.
func findAll(n *html.Node, tags ...string) []*html.Node {
	var results []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			for _, tag := range tags {
				if node.Data == tag {
					results = append(results, node)
					return // don't descend into matched nodes
				}
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return results
}

// nodeText extracts the visible text of a node.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}
	var buf strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text := nodeText(c); text != "" {
			if buf.Len() > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(text)
		}
	}
	return buf.String()
}
