package main

import (
	"errors"
	"fmt"

	"github.com/revelaction/grammarcore/grammar"
	"github.com/revelaction/grammarcore/lexicon"
	"github.com/revelaction/grammarcore/morph"
)

// selfCheck verifies the invariants the generator relies on: the lexicon
// grows at runtime, the morphology table and the starter grammar.
func selfCheck() error {
	lex := lexicon.New()
	if contains(lex.WordsForPOS("NOUN"), "scientist") {
		return errors.New("scientist is already a noun")
	}

	lex.Add("scientist", "NOUN", 0.3)
	if !contains(lex.WordsForPOS("NOUN"), "scientist") {
		return errors.New("added noun scientist not found")
	}

	inflections := []struct {
		fn   func(string) string
		in   string
		want string
	}{
		{morph.Pluralize, "cat", "cats"},
		{morph.Pluralize, "box", "boxes"},
		{morph.ThirdPersonSingular, "chase", "chases"},
		{morph.PastTense, "like", "liked"},
	}

	for _, tt := range inflections {
		if got := tt.fn(tt.in); got != tt.want {
			return fmt.Errorf("inflection of %q: expected %q, got %q", tt.in, tt.want, got)
		}
	}

	g := grammar.New()
	for _, nt := range []string{"S", "CLAUSE", "NP", "VP", "Q", "IMP"} {
		if !g.Has(nt) {
			return fmt.Errorf("grammar has no rule for %s", nt)
		}
	}

	return nil
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}

	return false
}
