package grammar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	arrow     = "->"
	separator = "|"
)

// ParseRule parses a rule in the form
//
//	NP -> DET N | DET ADJ N | <NOUN> "!"
//
// Bare words starting with an uppercase letter are nonterminals, <TAG> words
// are POS slots and anything else (quoted or not) is a literal. Quoted
// literals may contain spaces and "|".
func ParseRule(line string) (Rule, error) {
	lhs, rhs, found := strings.Cut(line, arrow)
	if !found {
		return Rule{}, fmt.Errorf("missing %q in rule: %s", arrow, line)
	}

	lhs = strings.TrimSpace(lhs)
	if lhs == "" {
		return Rule{}, errors.New("Rule has no left hand side")
	}

	if len(strings.Fields(lhs)) > 1 {
		return Rule{}, fmt.Errorf("left hand side must be a single symbol: %q", lhs)
	}

	words, err := tokenize(rhs)
	if err != nil {
		return Rule{}, fmt.Errorf("%s: %w", lhs, err)
	}

	// one group of words per alternative
	groups := [][]string{nil}
	for _, w := range words {
		if w == separator {
			groups = append(groups, nil)
			continue
		}

		groups[len(groups)-1] = append(groups[len(groups)-1], w)
	}

	r := Rule{LHS: lhs}
	for idx, alt := range groups {
		exp, err := ParseExpansion(alt)
		if err != nil {
			return Rule{}, fmt.Errorf("alternative %d of %s: %w", idx, lhs, err)
		}

		r.Alternatives = append(r.Alternatives, exp)
	}

	return r, nil
}

// tokenize splits the right hand side of a rule into words and separators.
// A quoted literal is a single word, even if it contains spaces or "|".
func tokenize(rhs string) ([]string, error) {
	var words []string
	var word strings.Builder
	inQuote, escaped := false, false

	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}

	for _, r := range rhs {
		switch {
		case inQuote:
			word.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inQuote = false
			}
		case r == '"':
			word.WriteRune(r)
			inQuote = true
		case unicode.IsSpace(r):
			flush()
		case string(r) == separator:
			flush()
			words = append(words, separator)
		default:
			word.WriteRune(r)
		}
	}

	if inQuote {
		return nil, fmt.Errorf("unterminated literal %s", word.String())
	}

	flush()
	return words, nil
}

// ParseExpansion converts the words of one alternative into symbols.
func ParseExpansion(words []string) (Expansion, error) {
	if len(words) == 0 {
		return nil, errors.New("empty alternative")
	}

	var exp Expansion
	for _, w := range words {
		s, err := parseSymbol(w)
		if err != nil {
			return nil, err
		}

		exp = append(exp, s)
	}

	return exp, nil
}

func parseSymbol(w string) (Symbol, error) {
	if strings.HasPrefix(w, "<") {
		if !strings.HasSuffix(w, ">") || len(w) < 3 {
			return Symbol{}, fmt.Errorf("malformed slot %q", w)
		}

		return PosSlot(strings.ToUpper(w[1:len(w)-1]), nil), nil
	}

	if strings.HasPrefix(w, `"`) {
		text, err := strconv.Unquote(w)
		if err != nil {
			return Symbol{}, fmt.Errorf("malformed literal %s: %w", w, err)
		}

		return Lit(text), nil
	}

	firstChar := []rune(w)[0]
	if unicode.IsUpper(firstChar) && unicode.IsLetter(firstChar) {
		return NT(w), nil
	}

	return Lit(w), nil
}
