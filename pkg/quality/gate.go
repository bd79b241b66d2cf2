// Package quality scores the rendered Markdown and decides whether to
// trust the candidate-based extraction or fall back to a whole-document
// conversion.
package quality

import "strings"

// acceptThreshold is the score above which the scored extraction is
// trusted. At or below it, callers should use the fallback path.
const acceptThreshold = 10

// Score computes the quality score for a rendered extraction. content
// is the rendered Markdown body, documentText is the plain text of
// the whole original document (used for the content-to-boilerplate
// ratio, not just the scored root), and title is the resolved article
// title.
func Score(content, documentText, title string) int {
	score := 0

	contentLen := len(content)
	if contentLen < 200 {
		score -= 30
	} else if contentLen > 500 {
		score += 15
	}

	if textLen := len(documentText); textLen > 0 {
		ratio := float64(contentLen) / float64(textLen)
		if ratio < 0.1 {
			score -= 20
		} else if ratio > 0.4 {
			score += 10
		}
	}

	hasParagraphs := strings.Contains(content, "\n\n")
	if hasParagraphs {
		score += 10
	}
	if strings.Contains(content, "# ") || strings.Contains(content, "## ") {
		score += 5
	}
	if strings.Contains(content, "- ") || strings.Contains(content, "1. ") {
		score += 5
	}

	links := strings.Count(content, "](")
	paragraphs := strings.Count(content, "\n\n") + 1
	if paragraphs > 0 && float64(links)/float64(paragraphs) > 2.0 {
		score -= 15
	}

	for _, marker := range []string{"sign up", "log in", "cookie", "privacy policy"} {
		if strings.Contains(content, marker) {
			score -= 5
			break
		}
	}

	if title == "Untitled Article" || contentLen < 100 || !hasParagraphs {
		score -= 25
	}

	return score
}

// Accept reports whether a score is good enough to trust the scored
// extraction over the whole-document fallback.
func Accept(score int) bool {
	return score > acceptThreshold
}
