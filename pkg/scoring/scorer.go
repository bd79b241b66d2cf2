package scoring

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hlfan/readurl-mcp/pkg/htmldoc"
)

// candidateSelectors is the set of elements eligible to accumulate a
// score, either directly (as a qualifying paragraph) or as an
// ancestor that a paragraph's score propagates into.
const candidateSelectors = `p, div, section, article, main, .content, #content, .post, .article, [itemprop="articleBody"], td, pre`

const minQualifyingTextLength = 25

// CandidateScore pairs a scored element with its accumulated score.
// Ties are broken by first-seen order, recorded in Order.
type CandidateScore struct {
	Element *goquery.Selection
	Score   float64
	Order   int
}

type candidateTracker struct {
	doc        *htmldoc.Document
	byNode     map[*html.Node]*CandidateScore
	candidates []*CandidateScore
}

func newCandidateTracker(doc *htmldoc.Document) *candidateTracker {
	return &candidateTracker{doc: doc, byNode: make(map[*html.Node]*CandidateScore)}
}

func (t *candidateTracker) add(el *goquery.Selection, amount float64) {
	if el.Length() == 0 {
		return
	}
	node := el.Get(0)
	c, ok := t.byNode[node]
	if !ok {
		c = &CandidateScore{Element: el, Order: len(t.candidates)}
		t.byNode[node] = c
		t.candidates = append(t.candidates, c)
	}
	c.Score += amount
}

// SelectCandidate runs the collection, propagation, and link-density
// penalty passes over doc and returns the winning element along with
// the full candidate list (for tests and diagnostics). Per spec, a
// document with no qualifying candidates falls back to a single
// candidate for <body> at score 0.5.
func SelectCandidate(doc *htmldoc.Document) (*goquery.Selection, []*CandidateScore) {
	tracker := newCandidateTracker(doc)

	doc.Select(candidateSelectors).Each(func(_ int, el *goquery.Selection) {
		if !qualifies(el) {
			return
		}
		propagate(tracker, el)
	})

	for _, c := range tracker.candidates {
		density := linkDensity(c.Element)
		c.Score *= 1 - density
	}

	if len(tracker.candidates) == 0 {
		body := doc.Select("body")
		if body.Length() == 0 {
			body = doc.Root()
		}
		tracker.candidates = []*CandidateScore{{Element: body, Score: 0.5, Order: 0}}
	}

	winner := tracker.candidates[0]
	for _, c := range tracker.candidates[1:] {
		if c.Score > winner.Score {
			winner = c
		}
	}
	return winner.Element, tracker.candidates
}

func qualifies(el *goquery.Selection) bool {
	if isUnlikelyCandidate(el) {
		return false
	}
	text := strings.TrimSpace(el.Text())
	return len(text) >= minQualifyingTextLength
}

func isUnlikelyCandidate(el *goquery.Selection) bool {
	role, _ := el.Attr("role")
	if unlikelyRoles[role] {
		return true
	}

	class, _ := el.Attr("class")
	id, _ := el.Attr("id")
	combined := class + " " + id

	if !unlikelyRe.MatchString(combined) || positiveRe.MatchString(combined) {
		return false
	}
	if htmldoc.TagName(el) == "body" {
		return false
	}
	if el.Closest("table").Length() > 0 || el.Closest("code").Length() > 0 {
		return false
	}
	return true
}

func propagate(tracker *candidateTracker, paragraph *goquery.Selection) {
	base := baseScore(paragraph)

	cur := paragraph
	for depth := 0; depth < 5; depth++ {
		parent := htmldoc.Parent(cur)
		if parent.Length() == 0 {
			return
		}
		tracker.add(parent, base/divider(depth))
		cur = parent
	}
}

func divider(depth int) float64 {
	switch depth {
	case 0:
		return 1.0
	case 1:
		return 2.0
	default:
		return float64(depth) * 3.0
	}
}

var tagMinus3 = map[string]bool{
	"address": true, "ol": true, "ul": true, "dl": true,
	"dd": true, "dt": true, "li": true, "form": true,
}
var tagMinus5 = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "th": true,
}

func baseScore(el *goquery.Selection) float64 {
	text := strings.TrimSpace(el.Text())

	score := 1.0
	score += 0.1 * float64(strings.Count(text, ","))

	lengthBonus := float64(len(text)) / 100.0
	if lengthBonus > 3.0 {
		lengthBonus = 3.0
	}
	score += lengthBonus

	tag := htmldoc.TagName(el)
	switch {
	case tag == "div":
		score += 5
	case tag == "pre" || tag == "td" || tag == "blockquote":
		score += 3
	case tagMinus3[tag]:
		score -= 3
	case tagMinus5[tag]:
		score -= 5
	}

	score += classWeight(el)
	return score
}

func classWeight(el *goquery.Selection) float64 {
	weight := 0.0
	if class, ok := el.Attr("class"); ok {
		if positiveRe.MatchString(class) {
			weight += 25
		}
		if negativeRe.MatchString(class) {
			weight -= 25
		}
	}
	if id, ok := el.Attr("id"); ok {
		if positiveRe.MatchString(id) {
			weight += 25
		}
		if negativeRe.MatchString(id) {
			weight -= 25
		}
	}
	return weight
}

// linkDensity is the ratio of text found inside <a> descendants to
// the element's total text, zero when the element has no text at all.
func linkDensity(el *goquery.Selection) float64 {
	total := len(strings.TrimSpace(el.Text()))
	if total == 0 {
		return 0
	}
	linkLen := 0
	el.Find("a").Each(func(_ int, a *goquery.Selection) {
		linkLen += len(a.Text())
	})
	return float64(linkLen) / float64(total)
}
