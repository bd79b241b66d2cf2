package quality

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// Fallback converts the whole document to Markdown with a generic
// converter that skips <script> and <style>, and recovers a title by
// substring-scanning between the first <title> and </title>. Used
// when the scored extraction fails the quality gate, or when
// candidate selection/rendering produced nothing usable at all.
func Fallback(html string) (title, markdown string, err error) {
	converter := md.NewConverter("", true, nil)
	converter.Use(md.Plugin(func(c *md.Converter) []md.Rule {
		return []md.Rule{
			{
				Filter: []string{"script", "style"},
				Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
					return md.String("")
				},
			},
		}
	}))

	markdown, err = converter.ConvertString(html)
	if err != nil {
		return "", "", err
	}

	return recoverTitle(html), markdown, nil
}

func recoverTitle(html string) string {
	_, after, found := strings.Cut(html, "<title>")
	if !found {
		return ""
	}
	before, _, found := strings.Cut(after, "</title>")
	if !found {
		return ""
	}
	return strings.TrimSpace(before)
}
