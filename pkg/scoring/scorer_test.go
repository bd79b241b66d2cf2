package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hlfan/readurl-mcp/pkg/htmldoc"
)

func mustParse(t *testing.T, html string) *htmldoc.Document {
	t.Helper()
	doc, err := htmldoc.Parse(html)
	require.NoError(t, err)
	return doc
}

func TestSelectCandidate_WinnerContainsArticleText(t *testing.T) {
	html := `<html><body>
		<div class="sidebar"><p>Subscribe to our newsletter for updates and more updates and even more updates today.</p></div>
		<article class="main-content">
			<h1>Main Article</h1>
			<p>This is the main content of the article, with plenty of real prose to score highly, well above the noise around it.</p>
			<p>A second paragraph continues the narrative with more substantial text so the scorer has real signal to work from.</p>
		</article>
	</body></html>`
	doc := mustParse(t, html)

	winner, candidates := SelectCandidate(doc)
	require.NotEmpty(t, candidates)
	assert.Contains(t, strings.ToLower(winner.Text()), "main content of the article")
}

func TestSelectCandidate_NoQualifyingContentFallsBackToBody(t *testing.T) {
	html := `<html><body><div class="ad">x</div></body></html>`
	doc := mustParse(t, html)

	winner, candidates := SelectCandidate(doc)
	require.Len(t, candidates, 1)
	assert.Equal(t, "body", htmldoc.TagName(winner))
}

func TestSelectCandidate_InvariantUnderEmptySpanWrapping(t *testing.T) {
	plain := `<html><body><article><p>A long enough paragraph of real article prose to qualify for scoring purposes here.</p></article></body></html>`
	wrapped := `<html><body><article><p><span></span>A long enough paragraph of real article prose to qualify for scoring purposes here.<span></span></span></p></article></body></html>`

	plainWinner, _ := SelectCandidate(mustParse(t, plain))
	wrappedWinner, _ := SelectCandidate(mustParse(t, wrapped))

	assert.Equal(t, strings.TrimSpace(plainWinner.Text()), strings.TrimSpace(wrappedWinner.Text()))
}

func TestIsUnlikelyCandidate_CommentClassExcluded(t *testing.T) {
	doc := mustParse(t, `<html><body><div class="comment-section"><p>short</p></div></body></html>`)
	el := doc.Select("div.comment-section")
	assert.True(t, isUnlikelyCandidate(el))
}

func TestIsUnlikelyCandidate_PositivePatternOverridesUnlikely(t *testing.T) {
	doc := mustParse(t, `<html><body><div class="comment-content"><p>short</p></div></body></html>`)
	el := doc.Select("div.comment-content")
	assert.False(t, isUnlikelyCandidate(el))
}

func TestLinkDensity_AllTextLinked(t *testing.T) {
	doc := mustParse(t, `<html><body><p><a href="/x">all of the text</a></p></body></html>`)
	el := doc.Select("p")
	assert.InDelta(t, 1.0, linkDensity(el), 0.01)
}

func TestLinkDensity_NoText(t *testing.T) {
	doc := mustParse(t, `<html><body><p></p></body></html>`)
	el := doc.Select("p")
	assert.Equal(t, 0.0, linkDensity(el))
}
