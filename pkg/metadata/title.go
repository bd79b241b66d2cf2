package metadata

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Title returns the trimmed text of the first <title> element, or ""
// if the document has none.
func Title(doc *goquery.Document) string {
	sel := doc.Find("title").First()
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.Text())
}
