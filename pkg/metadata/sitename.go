package metadata

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// SiteName resolves og:site_name, then the registrable host label from
// baseURL (leading "www." stripped, first label capitalized), then
// application-name. baseURL may be nil.
func SiteName(doc *goquery.Document, baseURL *url.URL) string {
	if v := metaContentByProperty(doc, "og:site_name"); v != "" {
		return v
	}
	if baseURL != nil {
		if v := siteNameFromHost(baseURL.Hostname()); v != "" {
			return v
		}
	}
	return metaContent(doc, "application-name")
}

func siteNameFromHost(host string) string {
	host = strings.TrimPrefix(host, "www.")
	if host == "" {
		return ""
	}
	label := strings.Split(host, ".")[0]
	if label == "" {
		return ""
	}
	r := []rune(label)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
