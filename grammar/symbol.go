package grammar

import (
	"strconv"
)

// Kind tells how a Symbol is resolved during a derivation.
type Kind int

const (
	// Invalid is the zero Kind. A grammar containing it is malformed.
	Invalid Kind = iota

	// Nonterminal symbols are expanded through the grammar rules.
	Nonterminal

	// Slot symbols are replaced by a word of the given part of speech.
	Slot

	// Literal symbols are emitted verbatim.
	Literal
)

func (k Kind) String() string {
	switch k {
	case Nonterminal:
		return "nonterminal"
	case Slot:
		return "slot"
	case Literal:
		return "literal"
	default:
		return "invalid"
	}
}

// Symbol is an element of a rule expansion.
type Symbol struct {
	Kind Kind

	// Name is the nonterminal name, the slot POS tag (without brackets) or the
	// literal text, depending on Kind.
	Name string

	// Attrs are slot attributes (f.ex. "num": "PL"). They are carried but not
	// used by the generator.
	Attrs map[string]string
}

func NT(name string) Symbol {
	return Symbol{Kind: Nonterminal, Name: name}
}

func PosSlot(tag string, attrs map[string]string) Symbol {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return Symbol{Kind: Slot, Name: tag, Attrs: attrs}
}

func Lit(text string) Symbol {
	return Symbol{Kind: Literal, Name: text}
}

// Label is the name used for the symbol in a derivation tree: the bare name
// for nonterminals and literals, <TAG> for slots.
func (s Symbol) Label() string {
	if s.Kind == Slot {
		return "<" + s.Name + ">"
	}

	return s.Name
}

// String renders the symbol in the rule syntax accepted by ParseRule.
func (s Symbol) String() string {
	switch s.Kind {
	case Nonterminal:
		return s.Name
	case Slot:
		return "<" + s.Name + ">"
	case Literal:
		return strconv.Quote(s.Name)
	default:
		return "<invalid>"
	}
}
