package metadata

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// bylineSelectors is tried in order once the meta-tag sources are
// exhausted. Each selector's matching elements contribute one name;
// multiple distinct values under the same selector are joined like
// the meta-author list.
var bylineSelectors = []string{
	".byline", ".author", ".article-author", `[rel="author"]`, `[itemprop="author"]`,
	".authors", ".contributors", ".entry-author", ".post-author", ".meta-author",
}

// Byline resolves the article byline, trying authors-name meta, then
// all author meta tags, then a fixed list of selectors. Returns "" if
// nothing usable is found.
func Byline(doc *goquery.Document) string {
	if v := bylineFromAuthorsNameMeta(doc); v != "" {
		return v
	}
	if v := bylineFromAuthorMetas(doc); v != "" {
		return v
	}
	return bylineFromSelectors(doc)
}

func bylineFromAuthorsNameMeta(doc *goquery.Document) string {
	raw := metaContent(doc, "authors-name")
	if raw == "" {
		return ""
	}
	joined := joinNames(splitNames(raw))
	if joined == "" || len(joined) > maxFieldLength {
		return ""
	}
	return joined
}

func bylineFromAuthorMetas(doc *goquery.Document) string {
	values := dedupeSorted(allMetaContents(doc, "author"))
	joined := joinNames(values)
	if joined == "" || len(joined) > maxFieldLength {
		return ""
	}
	return joined
}

func bylineFromSelectors(doc *goquery.Document) string {
	for _, selector := range bylineSelectors {
		var values []string
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if v := strings.TrimSpace(s.Text()); v != "" {
				values = append(values, v)
			}
		})
		if len(values) == 0 {
			continue
		}

		distinct := dedupeOrdered(values)
		var result string
		if len(distinct) > 1 {
			result = joinNames(distinct)
		} else {
			result = distinct[0]
		}
		if result != "" && len(result) <= maxFieldLength {
			return result
		}
	}
	return ""
}
