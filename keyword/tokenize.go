package keyword

import (
	"strings"
)

// Splits free-form post text in to tokens on whitespace.
//
// Tokens keep their punctuation: matching against post text is defined over
// whole whitespace-delimited words, so "#post" and "post" are distinct tokens.
func TokenizeText(text string) []string {
	return strings.Fields(text)
}

// Helper to check a single token against a list of tokens, case-insensitively
func TokenInSet(tok string, set []string) bool {
	for _, s := range set {
		if strings.EqualFold(tok, s) {
			return true
		}
	}
	return false
}
