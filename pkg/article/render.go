package article

import "strings"

// Render assembles the final Markdown document for a. url is the
// page's original address, used in both templates' source line.
//
// Accepted extractions get the metadata header (site name, title,
// byline, date, source line, then a "---" separator); the site-name,
// byline and date lines are omitted when their source is empty, while
// the title line, the source line and the separator are always
// written. Fallback extractions get the simpler "Title/URL" header
// with no separator.
func Render(a Article, url string) string {
	if a.Fallback {
		var b strings.Builder
		b.WriteString("Title: " + a.Title + "\n")
		b.WriteString("URL: " + url + "\n\n")
		b.WriteString(a.Content)
		return b.String()
	}

	var b strings.Builder
	wroteHeader := false

	if a.SiteName != "" {
		b.WriteString("_" + a.SiteName + "_\n\n")
		wroteHeader = true
	}

	b.WriteString("# " + a.Title + "\n")
	wroteHeader = true

	if a.Byline != "" {
		b.WriteString("by " + a.Byline + "\n")
	}
	if a.HasDate {
		b.WriteString(a.DatePublished.Format("02 January 2006") + "\n")
	}
	b.WriteString("Available at " + url + "\n\n")

	if wroteHeader {
		b.WriteString("---\n\n")
	}
	b.WriteString(a.Content)
	return b.String()
}
