package generate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const vowels = "aeiou"

// Postprocess applies agreement fixes to the token sequence. Currently only
// the indefinite article: "a" becomes "an" before a vowel initial word.
func Postprocess(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if strings.ToLower(tok) == "a" && i+1 < len(tokens) {
			next := strings.ToLower(tokens[i+1])
			if next != "" && strings.IndexByte(vowels, next[0]) >= 0 {
				tok = "an"
			}
		}

		out = append(out, tok)
	}

	return out
}

// Linearize joins the tokens into a sentence: no space before "?" and ",",
// first letter uppercase and a final period if no terminal punctuation is
// present.
func Linearize(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	s := strings.Join(tokens, " ")
	s = strings.ReplaceAll(s, " ?", "?")
	s = strings.ReplaceAll(s, " ,", ",")

	r, size := utf8.DecodeRuneInString(s)
	if size > 0 {
		s = string(unicode.ToUpper(r)) + s[size:]
	}

	if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "?") && !strings.HasSuffix(s, "!") {
		s += "."
	}

	return s
}
