package metadata

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// dateMetaLookups is the ordered list of meta sources tried before
// falling back to element selectors. Each entry names the attribute
// ("property" or "name") and its value.
var dateMetaLookups = []struct{ attr, value string }{
	{"property", "article:published_time"},
	{"name", "publication_date"},
	{"name", "date"},
	{"name", "pubdate"},
	{"property", "og:published_time"},
	{"name", "datePublished"}, // itemprop=datePublished metas are also commonly named this way
}

// dateElementSelectors is tried in order after the meta sources; for
// each, the datetime attribute is tried first, then content, then
// trimmed text.
var dateElementSelectors = []string{
	`time[datetime]`,
	`.published[datetime]`,
	`[itemprop="datePublished"]`,
	`.post-date`,
	`.entry-date`,
	`.pubdate`,
	`.article-date`,
	`.date`,
	`.time`,
	`.timestamp`,
}

// freeTextSelector is scanned, in document order, for a sentence
// mentioning a publication date when every structured source misses.
// A single combined selector (rather than one pass per tag) is what
// keeps the match order document order instead of tag-group order.
const freeTextSelector = "p, div, span, small, time"

var freeTextMarkers = []string{"published", "Posted", "Date"}

// DatePublished resolves the publication instant, trying meta tags,
// then element attributes/text, then a free-text scan. Returns the
// zero time and false if nothing parseable was found.
func DatePublished(doc *goquery.Document) (time.Time, bool) {
	for _, lookup := range dateMetaLookups {
		sel := doc.Find(`meta[` + lookup.attr + `="` + lookup.value + `"]`).First()
		if sel.Length() == 0 {
			continue
		}
		if content := strings.TrimSpace(sel.AttrOr("content", "")); content != "" {
			if t, ok := ParseDate(content); ok {
				return t, true
			}
		}
	}

	// meta[itemprop="datePublished"] is the one lookup above that
	// doesn't fit the name/property shape; check it directly too.
	if sel := doc.Find(`meta[itemprop="datePublished"]`).First(); sel.Length() > 0 {
		if content := strings.TrimSpace(sel.AttrOr("content", "")); content != "" {
			if t, ok := ParseDate(content); ok {
				return t, true
			}
		}
	}

	for _, selector := range dateElementSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		candidates := []string{
			sel.AttrOr("datetime", ""),
			sel.AttrOr("content", ""),
			strings.TrimSpace(sel.Text()),
		}
		for _, candidate := range candidates {
			candidate = strings.TrimSpace(candidate)
			if candidate == "" {
				continue
			}
			if t, ok := ParseDate(candidate); ok {
				return t, true
			}
		}
	}

	return freeTextDate(doc)
}

func freeTextDate(doc *goquery.Document) (time.Time, bool) {
	var found time.Time
	var ok bool
	doc.Find(freeTextSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text == "" || !containsAnyMarker(text) {
			return true
		}
		if t, extracted := ExtractFreeTextDate(text); extracted {
			found, ok = t, true
			return false
		}
		return true
	})
	return found, ok
}

func containsAnyMarker(text string) bool {
	for _, marker := range freeTextMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
