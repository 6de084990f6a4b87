package news

import (
	"strings"
	"unicode/utf8"
)

// Tokenize normalizes free text into a set of comparable tokens: lowercase,
// every rune that is neither a word character nor a CJK ideograph becomes a
// separator, and tokens of a single rune are discarded. No stemming, no
// stopword removal.
func Tokenize(text string) map[string]struct{} {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isWordRune(r) || isCJK(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	set := make(map[string]struct{})
	for _, tok := range strings.Fields(b.String()) {
		if utf8.RuneCountInString(tok) > 1 {
			set[tok] = struct{}{}
		}
	}
	return set
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func isCJK(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FA5
}
