// Package htmldoc provides the parsed HTML document model the rest of
// the extraction pipeline builds on: a traversable tree with
// CSS-selector queries, backed by goquery/golang.org/x/net/html.
package htmldoc

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is an immutable parsed HTML tree. The pipeline never
// mutates the underlying DOM; callers that want a pruned view filter
// during traversal instead.
type Document struct {
	doc *goquery.Document
}

// Parse parses a UTF-8 HTML string into a Document.
func Parse(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parse: %w", err)
	}
	if doc.Find("*").Length() == 0 {
		return nil, fmt.Errorf("htmldoc: parse produced no elements")
	}
	return &Document{doc: doc}, nil
}

// Root returns the document's root selection: the document node, which
// is the parent of the (possibly implicit) <html> element.
func (d *Document) Root() *goquery.Selection {
	return d.doc.Selection
}

// Raw exposes the underlying goquery.Document for packages (metadata)
// that query it directly rather than through Document's helpers.
func (d *Document) Raw() *goquery.Document {
	return d.doc
}

// Select runs a CSS selector query against the whole document.
// A selector that fails to compile is treated as "no match", never
// fatal: goquery returns an empty selection for it.
func (d *Document) Select(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// TextOf concatenates all descendant text of el in document order.
// Callers that need whitespace collapsed do so themselves — scoring
// and rendering collapse differently.
func TextOf(el *goquery.Selection) string {
	return el.Text()
}

// Attr returns an element's attribute value, if present.
func Attr(el *goquery.Selection, name string) (string, bool) {
	if el.Length() == 0 {
		return "", false
	}
	return el.Attr(name)
}

// Children returns the direct element children of el.
func Children(el *goquery.Selection) *goquery.Selection {
	return el.Children()
}

// Parent returns el's parent element, or an empty selection at the
// document root.
func Parent(el *goquery.Selection) *goquery.Selection {
	return el.Parent()
}

// SameNode reports whether two selections refer to the identical DOM
// node. Candidate identity must never be decided by attribute
// equality — two elements with the same class are still distinct
// candidates.
func SameNode(a, b *goquery.Selection) bool {
	if a.Length() == 0 || b.Length() == 0 {
		return false
	}
	return a.Get(0) == b.Get(0)
}

// TagName returns the lowercased tag name of el's first node.
func TagName(el *goquery.Selection) string {
	if el.Length() == 0 {
		return ""
	}
	return goquery.NodeName(el)
}
