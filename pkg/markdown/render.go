// Package markdown walks a selected DOM subtree and renders it as
// Markdown, resolving relative URLs and skipping noise subtrees along
// the way.
package markdown

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hlfan/readurl-mcp/pkg/htmldoc"
)

// noiseSubstrings mark a subtree as site chrome rather than article
// body. A noise element is dropped entirely unless its tag is in the
// structural allow-list below, or it is body/article/main.
var noiseSubstrings = []string{
	"share", "social", "comment", "footer", "header", "nav",
	"advertisement", "sidebar", "menu", "related", "promo",
	"newsletter", "subscribe", "popup",
}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Render converts root and its descendants to Markdown. baseURL may
// be nil, in which case relative URLs are left unresolved.
func Render(root *goquery.Selection, baseURL *url.URL) string {
	var buf strings.Builder
	renderBlock(&buf, root, baseURL)
	return blankRunRe.ReplaceAllString(buf.String(), "\n\n")
}

func isNoise(el *goquery.Selection) bool {
	tag := htmldoc.TagName(el)
	if tag == "body" || tag == "article" || tag == "main" {
		return false
	}
	class, _ := el.Attr("class")
	id, _ := el.Attr("id")
	combined := class + " " + id
	for _, s := range noiseSubstrings {
		if strings.Contains(combined, s) {
			return true
		}
	}
	return false
}

func allowedDespiteNoise(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6", "p", "img":
		return true
	default:
		return false
	}
}

func renderBlock(buf *strings.Builder, el *goquery.Selection, baseURL *url.URL) {
	tag := htmldoc.TagName(el)
	if isNoise(el) && !allowedDespiteNoise(tag) {
		return
	}

	switch tag {
	case "h1":
		writeHeading(buf, el, "# ", baseURL)
	case "h2":
		writeHeading(buf, el, "## ", baseURL)
	case "h3":
		writeHeading(buf, el, "### ", baseURL)
	case "h4", "h5", "h6":
		writeHeading(buf, el, "#### ", baseURL)
	case "p":
		if strings.TrimSpace(el.Text()) == "" {
			return
		}
		buf.WriteString(inlineContent(el, baseURL))
		buf.WriteString("\n\n")
	case "a":
		writeLink(buf, el, baseURL)
	case "strong", "b":
		buf.WriteString("**" + inlineContent(el, baseURL) + "**")
	case "em", "i":
		buf.WriteString("*" + inlineContent(el, baseURL) + "*")
	case "ul":
		renderList(buf, el, false, baseURL)
	case "ol":
		renderList(buf, el, true, baseURL)
	case "blockquote":
		renderBlockquote(buf, el, baseURL)
	case "img":
		writeImage(buf, el, baseURL)
		buf.WriteString("\n")
	case "figure":
		renderFigure(buf, el, baseURL)
	case "code", "pre":
		renderCode(buf, el)
	case "table":
		renderTable(buf, el)
	case "div", "section", "article", "main":
		renderChildren(buf, el, baseURL)
	default:
		if tag == "body" || strings.TrimSpace(el.Text()) != "" {
			renderChildren(buf, el, baseURL)
		}
	}
}

func renderChildren(buf *strings.Builder, el *goquery.Selection, baseURL *url.URL) {
	el.Contents().Each(func(_ int, node *goquery.Selection) {
		if goquery.NodeName(node) == "#text" {
			if len(node.Nodes) > 0 && strings.TrimSpace(node.Nodes[0].Data) != "" {
				buf.WriteString(node.Nodes[0].Data)
			}
			return
		}
		renderBlock(buf, node, baseURL)
	})
}

func writeHeading(buf *strings.Builder, el *goquery.Selection, prefix string, baseURL *url.URL) {
	text := strings.TrimSpace(inlineContent(el, baseURL))
	buf.WriteString(prefix)
	buf.WriteString(text)
	buf.WriteString("\n\n")
}

func writeLink(buf *strings.Builder, el *goquery.Selection, baseURL *url.URL) {
	text := strings.TrimSpace(el.Text())
	if text == "" {
		return
	}
	href, _ := el.Attr("href")
	buf.WriteString("[" + text + "](" + resolveURL(href, baseURL) + ")")
}

func writeImage(buf *strings.Builder, el *goquery.Selection, baseURL *url.URL) {
	alt, _ := el.Attr("alt")
	src, _ := el.Attr("src")
	buf.WriteString("![" + alt + "](" + resolveURL(src, baseURL) + ")")
}

func renderFigure(buf *strings.Builder, el *goquery.Selection, baseURL *url.URL) {
	img := el.Find("img").First()
	if img.Length() == 0 {
		return
	}
	writeImage(buf, img, baseURL)
	buf.WriteString("\n")

	if caption := el.Find("figcaption").First(); caption.Length() > 0 {
		if text := strings.TrimSpace(caption.Text()); text != "" {
			buf.WriteString("*" + text + "*\n")
		}
	}
	buf.WriteString("\n")
}

func renderCode(buf *strings.Builder, el *goquery.Selection) {
	text := strings.TrimSpace(el.Text())
	buf.WriteString("```\n")
	buf.WriteString(text)
	buf.WriteString("\n```\n\n")
}

func renderList(buf *strings.Builder, el *goquery.Selection, ordered bool, baseURL *url.URL) {
	buf.WriteString("\n")
	i := 1
	el.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		text := strings.TrimSpace(inlineContent(li, baseURL))
		if ordered {
			buf.WriteString(strconv.Itoa(i) + ". " + text + "\n")
			i++
		} else {
			buf.WriteString("- " + text + "\n")
		}
	})
	buf.WriteString("\n")
}

func renderBlockquote(buf *strings.Builder, el *goquery.Selection, baseURL *url.URL) {
	text := strings.TrimSpace(el.Text())
	if text != "" {
		writeQuoted(buf, text)
		return
	}

	var tmp strings.Builder
	renderChildren(&tmp, el, baseURL)
	writeQuoted(buf, tmp.String())
}

func writeQuoted(buf *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		buf.WriteString("> " + strings.TrimSpace(line) + "\n")
	}
	buf.WriteString("\n")
}

// inlineContent renders el's children as inline Markdown: <a>,
// <strong>/<b>, and <em>/<i> get their Markdown wrapping; everything
// else contributes its own text, recursively, with no block-level
// spacing. This is the "text-content" the block-level rules in
// renderBlock consume so that bold/italic/link formatting nested
// inside a paragraph or heading survives rendering.
func inlineContent(el *goquery.Selection, baseURL *url.URL) string {
	var buf strings.Builder
	el.Contents().Each(func(_ int, node *goquery.Selection) {
		if goquery.NodeName(node) == "#text" {
			if len(node.Nodes) > 0 {
				buf.WriteString(node.Nodes[0].Data)
			}
			return
		}

		switch htmldoc.TagName(node) {
		case "a":
			text := strings.TrimSpace(node.Text())
			if text == "" {
				return
			}
			href, _ := node.Attr("href")
			buf.WriteString("[" + text + "](" + resolveURL(href, baseURL) + ")")
		case "strong", "b":
			buf.WriteString("**" + inlineContent(node, baseURL) + "**")
		case "em", "i":
			buf.WriteString("*" + inlineContent(node, baseURL) + "*")
		default:
			buf.WriteString(inlineContent(node, baseURL))
		}
	})
	return buf.String()
}
