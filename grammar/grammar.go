// Package grammar holds the context free rules that drive sentence
// generation.
package grammar

import (
	"sort"
	"strings"
)

const DefaultStart = "S"

// Expansion is one alternative of a rule: an ordered sequence of symbols.
type Expansion []Symbol

func (e Expansion) String() string {
	sl := []string{}
	for _, s := range e {
		sl = append(sl, s.String())
	}

	return strings.Join(sl, " ")
}

type Rule struct {
	LHS          string
	Alternatives []Expansion
}

// String renders the rule as "LHS -> A B | C".
func (r Rule) String() string {
	alts := []string{}
	for _, e := range r.Alternatives {
		alts = append(alts, e.String())
	}

	return r.LHS + " -> " + strings.Join(alts, " | ")
}

// Grammar maps nonterminals to their rule.
type Grammar struct {
	rules map[string]Rule
	start string
}

// New returns a Grammar with the starter rule set and "S" as start symbol.
func New() *Grammar {
	g := Empty()
	g.seed()
	return g
}

// Empty returns a Grammar without rules.
func Empty() *Grammar {
	return &Grammar{rules: map[string]Rule{}, start: DefaultStart}
}

func (g *Grammar) seed() {
	g.AddRule("S", alts("CLAUSE", "Q", "IMP"))

	// declaratives
	g.AddRule("CLAUSE", alts("NP VP", "NP VP PP"))
	g.AddRule("NP", alts("DET N", "DET ADJ N", "N"))
	g.AddRule("VP", alts("V NP", "V", "V ADJ"))
	g.AddRule("PP", alts("P NP"))

	// questions
	g.AddRule("Q", alts("AUX NP V NP ?", "WH V NP ?"))

	// imperatives
	g.AddRule("IMP", alts("V NP", "V"))

	// preterminals
	g.AddRule("DET", slot("DET"))
	g.AddRule("N", slot("NOUN"))
	g.AddRule("V", slot("VERB"))
	g.AddRule("ADJ", slot("ADJ"))
	g.AddRule("P", slot("P"))
	g.AddRule("AUX", slot("AUX"))
	g.AddRule("WH", slot("WH"))
	g.AddRule("?", []Expansion{{Lit("?")}})
}

// alts builds alternatives made only of nonterminals, one space separated
// string per alternative.
func alts(exps ...string) []Expansion {
	var out []Expansion
	for _, e := range exps {
		var exp Expansion
		for _, name := range strings.Fields(e) {
			exp = append(exp, NT(name))
		}
		out = append(out, exp)
	}

	return out
}

func slot(tag string) []Expansion {
	return []Expansion{{PosSlot(tag, nil)}}
}

// AddRule inserts or replaces the rule for lhs.
func (g *Grammar) AddRule(lhs string, alternatives []Expansion) {
	g.rules[lhs] = Rule{LHS: lhs, Alternatives: alternatives}
}

// Has reports whether nt is an expandable nonterminal.
func (g *Grammar) Has(nt string) bool {
	_, ok := g.rules[nt]
	return ok
}

func (g *Grammar) Rule(nt string) (Rule, bool) {
	r, ok := g.rules[nt]
	return r, ok
}

func (g *Grammar) Start() string {
	return g.start
}

func (g *Grammar) SetStart(nt string) {
	g.start = nt
}

// Nonterminals returns the names of all rules, sorted.
func (g *Grammar) Nonterminals() []string {
	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Undefined returns the nonterminals referenced in some expansion that have
// no rule. The generator emits them as literal text.
func (g *Grammar) Undefined() []string {
	seen := map[string]bool{}

	var undefined []string
	for _, name := range g.Nonterminals() {
		for _, exp := range g.rules[name].Alternatives {
			for _, s := range exp {
				if s.Kind != Nonterminal || g.Has(s.Name) || seen[s.Name] {
					continue
				}

				seen[s.Name] = true
				undefined = append(undefined, s.Name)
			}
		}
	}

	return undefined
}
