package tokenize

import (
	"strings"
	"unicode"
)

// Normalize splits raw text into lowercase alphanumeric tokens.
// Letters (any Unicode script) and digits accumulate into the current
// token; every other rune acts as a separator. Punctuation and
// whitespace never survive into a token.
//
// Normalize does not remove stopwords and does not deduplicate; both
// are later pipeline stages. Empty or all-separator input yields nil.
func Normalize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(unicode.ToLower(r))
		} else if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
