// Package htmltext turns feed-supplied HTML fragments into plain display
// text for summaries.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strip removes markup and collapses whitespace runs to single spaces.
func Strip(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Truncate cuts text to at most max runes, appending "..." when it was
// longer.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// Snippet strips markup and truncates, the standard treatment for an item
// summary.
func Snippet(s string, max int) string {
	return Truncate(Strip(s), max)
}
