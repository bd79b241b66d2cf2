// Package scoring identifies the block elements likely to contain the
// article body and ranks them by an accumulated structural score.
package scoring

import "regexp"

// unlikelyRe, positiveRe, and negativeRe are compiled once at package
// init and shared read-only across every extraction — no process-wide
// mutable state lives here, only these immutable regex tables.
var (
	unlikelyRe = regexp.MustCompile(`-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup`)
	positiveRe = regexp.MustCompile(`article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)
	negativeRe = regexp.MustCompile(`-ad-|hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|footer|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|widget`)
)

var unlikelyRoles = map[string]bool{
	"menu": true, "menubar": true, "complementary": true,
	"navigation": true, "alert": true, "alertdialog": true, "dialog": true,
}
