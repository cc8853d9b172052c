package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/stlfield/model"
)

// maxColSpan is the largest colspan honoured, matching browsers
const maxColSpan = 1000

// Reader provides access to the tables of an HTML document.
type Reader struct {
	doc    *html.Node
	title  string
	tables []ParsedTable
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader. Fragments without html or
// body elements are accepted.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{doc: doc}
	if t := findElement(doc, "title"); t != nil {
		reader.title = getTextContent(t)
	}
	reader.collectTables(doc)

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the document title, if any.
func (r *Reader) Title() string {
	return r.title
}

// TableCount returns the number of tables found, including nested ones.
func (r *Reader) TableCount() int {
	return len(r.tables)
}

// Tables returns every table in document order.
func (r *Reader) Tables() []*model.Table {
	out := make([]*model.Table, len(r.tables))
	for i := range r.tables {
		out[i] = r.tables[i].Table
	}
	return out
}

// ParsedTables returns every table along with its caption.
func (r *Reader) ParsedTables() []ParsedTable {
	return r.tables
}

// Table returns the i-th table.
func (r *Reader) Table(i int) (*model.Table, error) {
	if len(r.tables) == 0 {
		return nil, ErrNoTables
	}
	if i < 0 || i >= len(r.tables) {
		return nil, fmt.Errorf("htmldoc: table index %d out of range [0, %d)", i, len(r.tables))
	}
	return r.tables[i].Table, nil
}

// collectTables walks the tree in document order. Tables nested inside
// cells are collected after their parent.
func (r *Reader) collectTables(n *html.Node) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "table" {
			r.tables = append(r.tables, r.parseTable(n))
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.collectTables(c)
	}
}

// parseTable extracts a table from an HTML table element.
func (r *Reader) parseTable(tableNode *html.Node) ParsedTable {
	pt := ParsedTable{Table: &model.Table{}}
	t := pt.Table

	var headRows, bodyRows, footRows []model.Row

	// Find caption, thead, tbody, tfoot, or direct tr children
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "caption":
			pt.Caption = getTextContent(c)
		case "thead":
			headRows = append(headRows, r.parseTableRows(c, true)...)
		case "tbody":
			bodyRows = append(bodyRows, r.parseTableRows(c, false)...)
		case "tfoot":
			footRows = append(footRows, r.parseTableRows(c, false)...)
		case "tr":
			bodyRows = append(bodyRows, r.parseTableRow(c, false))
		}
	}

	// If no explicit header but first row is all th elements, use it as header
	if len(headRows) == 0 && len(bodyRows) > 0 && allHeaderCells(bodyRows[0]) {
		headRows, bodyRows = bodyRows[:1], bodyRows[1:]
	}

	// A table has at most one header and one footer row. Extra header rows
	// lead the body and extra footer rows trail it.
	if len(headRows) > 0 {
		t.Header = &headRows[0]
		bodyRows = append(headRows[1:len(headRows):len(headRows)], bodyRows...)
	}
	if n := len(footRows); n > 0 {
		t.Footer = &footRows[n-1]
		bodyRows = append(bodyRows, footRows[:n-1]...)
	}
	t.Body = bodyRows

	return pt
}

// parseTableRows parses rows within thead, tbody or tfoot.
func (r *Reader) parseTableRows(section *html.Node, isHeader bool) []model.Row {
	var rows []model.Row
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "tr" {
			rows = append(rows, r.parseTableRow(c, isHeader))
		}
	}
	return rows
}

// parseTableRow parses a single table row.
func (r *Reader) parseTableRow(tr *html.Node, isHeader bool) model.Row {
	var row model.Row

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cell := model.Cell{
				Text:   strings.Join(strings.Fields(getTextContent(c)), " "),
				Header: isHeader || c.Data == "th",
			}

			for _, attr := range c.Attr {
				switch attr.Key {
				case "colspan":
					if n, err := strconv.Atoi(strings.TrimSpace(attr.Val)); err == nil && n > 1 {
						cell.ColSpan = min(n, maxColSpan)
					}
				case "align":
					cell.Align = parseAlign(strings.ToLower(strings.TrimSpace(attr.Val)))
				case "style":
					if a := styleAlign(attr.Val); a != model.AlignDefault {
						cell.Align = a
					}
				}
			}

			row.Cells = append(row.Cells, cell)
		}
	}

	return row
}

// styleAlign reads text-align from an inline style attribute.
func styleAlign(style string) model.Alignment {
	for _, decl := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(prop), "text-align") {
			return parseAlign(strings.ToLower(strings.TrimSpace(val)))
		}
	}
	return model.AlignDefault
}

func allHeaderCells(row model.Row) bool {
	if len(row.Cells) == 0 {
		return false
	}
	for _, c := range row.Cells {
		if !c.Header {
			return false
		}
	}
	return true
}

// shouldSkipElement returns true if the element should be skipped during content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.TrimSpace(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		// Skip script/style content
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
	// Add space after certain block elements
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr":
			result.WriteString(" ")
		}
	}
}
