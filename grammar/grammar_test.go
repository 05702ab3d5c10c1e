package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeedNonterminals(t *testing.T) {
	g := New()
	for _, nt := range []string{"S", "CLAUSE", "NP", "VP", "PP", "Q", "IMP", "DET", "N", "V", "ADJ", "P", "AUX", "WH", "?"} {
		if !g.Has(nt) {
			t.Errorf("expected nonterminal %s", nt)
		}
	}

	if g.Has("<NOUN>") || g.Has("cat") {
		t.Errorf("slots and words are not nonterminals")
	}

	if g.Start() != "S" {
		t.Errorf("expected start S, got %s", g.Start())
	}

	if u := g.Undefined(); len(u) != 0 {
		t.Errorf("seed grammar references undefined nonterminals: %v", u)
	}
}

func TestSeedRules(t *testing.T) {
	g := New()

	tests := []struct {
		nt   string
		want string
	}{
		{"S", "S -> CLAUSE | Q | IMP"},
		{"CLAUSE", "CLAUSE -> NP VP | NP VP PP"},
		{"NP", "NP -> DET N | DET ADJ N | N"},
		{"VP", "VP -> V NP | V | V ADJ"},
		{"PP", "PP -> P NP"},
		{"Q", "Q -> AUX NP V NP ? | WH V NP ?"},
		{"IMP", "IMP -> V NP | V"},
		{"N", "N -> <NOUN>"},
		{"WH", "WH -> <WH>"},
		{"?", `? -> "?"`},
	}

	for _, tt := range tests {
		r, ok := g.Rule(tt.nt)
		if !ok {
			t.Fatalf("missing rule %s", tt.nt)
		}

		if r.String() != tt.want {
			t.Errorf("expected %q, got %q", tt.want, r.String())
		}
	}
}

func TestAddRuleOverwrites(t *testing.T) {
	g := New()
	g.AddRule("PP", []Expansion{{NT("P"), NT("NP")}, {Lit("here")}})

	r, _ := g.Rule("PP")
	if len(r.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(r.Alternatives))
	}
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule(`EXCL -> WOW <ADJ> "!" | oh NP`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Rule{
		LHS: "EXCL",
		Alternatives: []Expansion{
			{NT("WOW"), PosSlot("ADJ", nil), Lit("!")},
			{Lit("oh"), NT("NP")},
		},
	}

	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("rule mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRuleRoundTrip(t *testing.T) {
	g := New()
	for _, nt := range []string{"S", "CLAUSE", "NP", "VP", "PP", "IMP", "N", "?"} {
		r, _ := g.Rule(nt)
		got, err := ParseRule(r.String())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", nt, err)
		}

		if diff := cmp.Diff(r, got); diff != "" {
			t.Errorf("%s round trip mismatch (-want +got):\n%s", nt, diff)
		}
	}
}

func TestParseRuleErrors(t *testing.T) {
	for _, line := range []string{
		"NP DET N",
		" -> DET N",
		"NP VP -> DET",
		"NP -> DET | ",
		"NP -> <>",
		"NP -> <NOUN",
		`NP -> "unterminated`,
	} {
		if _, err := ParseRule(line); err == nil {
			t.Errorf("expected error for %q", line)
		}
	}
}

func TestSymbolLabel(t *testing.T) {
	tests := []struct {
		s    Symbol
		want string
	}{
		{NT("NP"), "NP"},
		{PosSlot("NOUN", nil), "<NOUN>"},
		{Lit("?"), "?"},
	}

	for _, tt := range tests {
		if tt.s.Label() != tt.want {
			t.Errorf("expected label %q, got %q", tt.want, tt.s.Label())
		}
	}

	if (Symbol{}).Kind != Invalid {
		t.Errorf("zero symbol must be invalid")
	}
}

func TestParseRuleQuotedLiterals(t *testing.T) {
	r, err := ParseRule(`X -> "hello world" | "a|b" NP | "say \"hi\""`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Rule{
		LHS: "X",
		Alternatives: []Expansion{
			{Lit("hello world")},
			{Lit("a|b"), NT("NP")},
			{Lit(`say "hi"`)},
		},
	}

	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("rule mismatch (-want +got):\n%s", diff)
	}

	got, err := ParseRule(r.String())
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", r.String(), err)
	}

	if diff := cmp.Diff(r, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
