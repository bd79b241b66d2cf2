// Package metadata derives title, byline, site name, and publication
// date from a parsed document's <meta> tags, structured attributes,
// and common class/id conventions.
package metadata

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxFieldLength bounds the byline-like fields spec.md calls out
// (authors-name, meta author, selector-derived author): values longer
// than this are rejected rather than truncated, uniformly across every
// path that produces a byline. See DESIGN.md for the Open Question
// this resolves.
const maxFieldLength = 100

// metaContent returns the trimmed content attribute of the first
// meta[name="name"] element, or "" if absent/empty.
func metaContent(doc *goquery.Document, name string) string {
	sel := doc.Find(`meta[name="` + name + `"]`).First()
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.AttrOr("content", ""))
}

// metaContentByProperty returns the trimmed content attribute of the
// first meta[property="property"] element.
func metaContentByProperty(doc *goquery.Document, property string) string {
	sel := doc.Find(`meta[property="` + property + `"]`).First()
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.AttrOr("content", ""))
}

// allMetaContents returns the trimmed, non-empty content attributes of
// every meta[name="name"] element, in document order.
func allMetaContents(doc *goquery.Document, name string) []string {
	var values []string
	doc.Find(`meta[name="` + name + `"]`).Each(func(_ int, s *goquery.Selection) {
		if v := strings.TrimSpace(s.AttrOr("content", "")); v != "" {
			values = append(values, v)
		}
	})
	return values
}

// splitNames splits a byline-like string on "," or "|" (whichever is
// present), trims each part, and drops empties.
func splitNames(value string) []string {
	sep := ""
	if strings.Contains(value, ",") {
		sep = ","
	} else if strings.Contains(value, "|") {
		sep = "|"
	}
	if sep == "" {
		if v := strings.TrimSpace(value); v != "" {
			return []string{v}
		}
		return nil
	}
	parts := strings.Split(value, sep)
	var names []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// joinNames joins names Oxford-comma-free: "A", "A and B", or
// "A, B and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// dedupeOrdered returns values with duplicates removed, preserving
// first-seen order.
func dedupeOrdered(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// dedupeSorted returns the sorted, deduplicated set of values.
func dedupeSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	// simple insertion sort is plenty for the handful of author names
	// a page ever carries.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
