// Package article orchestrates the readability pipeline: parsing,
// metadata extraction, candidate scoring, Markdown rendering, the
// quality gate, and output assembly into the two Markdown templates
// the rest of the system consumes.
package article

import (
	"net/url"
	"strings"
	"time"

	"github.com/hlfan/readurl-mcp/pkg/htmldoc"
	"github.com/hlfan/readurl-mcp/pkg/markdown"
	"github.com/hlfan/readurl-mcp/pkg/metadata"
	"github.com/hlfan/readurl-mcp/pkg/quality"
	"github.com/hlfan/readurl-mcp/pkg/scoring"
)

// untitled is the placeholder used when no title is found in the
// scored-extraction path.
const untitled = "Untitled Article"

// Article is the structured output of the core extractor.
type Article struct {
	Title         string
	Byline        string
	SiteName      string
	DatePublished time.Time
	HasDate       bool
	Content       string

	// Fallback reports whether Content came from the whole-document
	// fallback converter rather than the scored extraction. The two
	// paths render to different Markdown templates; see Render.
	Fallback bool
}

// Extract runs the full readability pipeline over html and returns the
// structured Article. baseURL may be nil, in which case relative URLs
// in the rendered content are left unresolved.
//
// Extract never fails because the scored extraction looked weak — the
// quality gate silently swaps in the whole-document fallback for
// that case. It only returns a NoContent error when both the scored
// path and the fallback converter fail outright.
func Extract(html string, baseURL *url.URL) (Article, error) {
	doc, parseErr := htmldoc.Parse(html)

	if parseErr == nil {
		root, _ := scoring.SelectCandidate(doc)
		content := markdown.Render(root, baseURL)
		title := metadata.Title(doc.Raw())
		if title == "" {
			title = untitled
		}

		documentText := strings.TrimSpace(doc.Root().Text())
		score := quality.Score(content, documentText, title)

		if quality.Accept(score) {
			byline := metadata.Byline(doc.Raw())
			siteName := metadata.SiteName(doc.Raw(), baseURL)
			date, hasDate := metadata.DatePublished(doc.Raw())

			return Article{
				Title:         title,
				Byline:        byline,
				SiteName:      siteName,
				DatePublished: date,
				HasDate:       hasDate,
				Content:       content,
			}, nil
		}
	}

	fallbackTitle, fallbackMarkdown, fallbackErr := quality.Fallback(html)
	if fallbackErr != nil {
		return Article{}, newError(NoContent, "Failed to extract content", firstNonNil(parseErr, fallbackErr))
	}
	if fallbackTitle == "" {
		fallbackTitle = "No title found"
	}

	return Article{
		Title:    fallbackTitle,
		Content:  fallbackMarkdown,
		Fallback: true,
	}, nil
}

func firstNonNil(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
