package markdown

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// renderTable emits a GFM pipe table. Headers come from thead th,
// falling back to the first row's th/td cells; a table with neither
// emits nothing. Body rows pad missing cells to the header count.
func renderTable(buf *strings.Builder, el *goquery.Selection) {
	headers := tableHeaders(el)
	if len(headers) == 0 {
		return
	}

	buf.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	seps := make([]string, len(headers))
	for i := range seps {
		seps[i] = "---"
	}
	buf.WriteString("| " + strings.Join(seps, " | ") + " |\n")

	el.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		for len(cells) < len(headers) {
			cells = append(cells, "")
		}
		if len(cells) > len(headers) {
			cells = cells[:len(headers)]
		}
		buf.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	})

	buf.WriteString("\n")
}

func tableHeaders(el *goquery.Selection) []string {
	var headers []string
	el.Find("thead th").Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(th.Text()))
	})
	if len(headers) > 0 {
		return headers
	}

	el.Find(`tr:first-child th, tr:first-child td`).Each(func(_ int, c *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(c.Text()))
	})
	return headers
}
