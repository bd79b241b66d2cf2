package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_GoodArticleIsAccepted(t *testing.T) {
	content := "# A Real Headline\n\n" + strings.Repeat("Real article prose with real sentences. ", 20) + "\n\nMore prose continues the narrative here in full.\n\n"
	documentText := strings.Repeat("word ", 50) // keeps the content/document ratio high
	score := Score(content, documentText, "A Real Headline")
	assert.True(t, Accept(score), "expected score %d to be accepted", score)
}

func TestScore_ShortContentIsRejected(t *testing.T) {
	score := Score("short", "word word word", "Untitled Article")
	assert.False(t, Accept(score))
}

func TestScore_LandingPagePhrasesArePenalized(t *testing.T) {
	base := "# Heading\n\n" + strings.Repeat("Real prose here. ", 30) + "\n\n"
	withPhrase := base + "Please sign up for our newsletter.\n\n"
	documentText := strings.Repeat("word ", 80)

	plain := Score(base, documentText, "Heading")
	penalized := Score(withPhrase, documentText, "Heading")
	assert.Equal(t, plain-5, penalized)
}

func TestScore_LandingPagePhraseCheckIsCaseSensitive(t *testing.T) {
	base := "# Heading\n\n" + strings.Repeat("Real prose here. ", 30) + "\n\n"
	upper := base + "SIGN UP now.\n\n"
	lower := base + "sign up now.\n\n"
	documentText := strings.Repeat("word ", 80)

	upperScore := Score(upper, documentText, "Heading")
	lowerScore := Score(lower, documentText, "Heading")
	assert.Greater(t, upperScore, lowerScore, "uppercase phrasing should not trigger the case-sensitive penalty")
}

func TestScore_LinkHeavyContentPenalized(t *testing.T) {
	paragraphs := strings.Repeat("[a](/a) [b](/b) [c](/c)\n\n", 5)
	documentText := strings.Repeat("word ", 50)
	score := Score(paragraphs, documentText, "Links")
	assert.False(t, Accept(score))
}

func TestAccept_Threshold(t *testing.T) {
	assert.False(t, Accept(10))
	assert.True(t, Accept(11))
}

func TestFallback_ConvertsAndSkipsScriptStyle(t *testing.T) {
	html := `<html><head><title>Fallback Title</title><style>.x{color:red}</style></head>
		<body><script>alert(1)</script><p>Plain body text.</p></body></html>`

	title, markdown, err := Fallback(html)
	require.NoError(t, err)
	assert.Equal(t, "Fallback Title", title)
	assert.Contains(t, markdown, "Plain body text.")
	assert.NotContains(t, markdown, "alert(1)")
	assert.NotContains(t, markdown, "color:red")
}

func TestFallback_NoTitle(t *testing.T) {
	title, _, err := Fallback(`<html><body><p>No title here.</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "", title)
}
