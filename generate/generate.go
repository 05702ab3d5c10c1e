// Package generate derives random sentences from a grammar, resolving part of
// speech slots against a lexicon and scoring the result's valence.
package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/revelaction/grammarcore/emotion"
	"github.com/revelaction/grammarcore/grammar"
	"go.uber.org/zap"
)

const DefaultMaxDepth = 64

var (
	// ErrUnknownSymbol is returned for a rule symbol of invalid kind.
	ErrUnknownSymbol = errors.New("unknown symbol type")

	// ErrEmptyRule is returned when a nonterminal has no alternatives.
	ErrEmptyRule = errors.New("rule has no alternatives")

	// ErrRecursionDepth is returned when a derivation is deeper than the
	// generator max depth.
	ErrRecursionDepth = errors.New("grammar recursion exceeded")
)

// closed class words, not taken from the lexicon
var (
	functionalWords = map[string][]string{
		"P":   {"with", "without", "near", "against"},
		"AUX": {"does", "did", "will"},
		"WH":  {"why", "how", "what", "who"},
	}

	determiners = []string{"the", "a", "an"}

	// used when the lexicon has no word of the class
	openClassDefault = map[string]string{
		"NOUN": "cat",
		"VERB": "see",
		"ADJ":  "happy",
	}
)

// Rules is the grammar capability used by the Generator.
type Rules interface {
	Start() string
	Rule(nt string) (grammar.Rule, bool)
}

// Words is the lexicon capability used by the Generator.
type Words interface {
	emotion.Lookup
	WordsForPOS(pos string) []string
}

// Result is the outcome of a single generation.
type Result struct {
	Text   string
	Tree   *Node
	Field  emotion.Field
	Tokens []string
}

type Generator struct {
	rules    Rules
	words    Words
	rnd      *rand.Rand
	logger   *zap.Logger
	maxDepth int
}

type Option func(*Generator)

// WithSeed makes the random stream reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random stream. It must not be shared with another
// Generator.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) {
		g.rnd = rnd
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithMaxDepth limits the derivation depth. A value <= 0 disables the limit.
func WithMaxDepth(depth int) Option {
	return func(g *Generator) {
		g.maxDepth = depth
	}
}

func New(rules Rules, words Words, opts ...Option) *Generator {
	g := &Generator{
		rules:    rules,
		words:    words,
		logger:   zap.NewNop(),
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rnd == nil {
		g.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g
}

// Generate expands the start symbol and returns the rendered sentence, its
// derivation tree and its valence.
func (g *Generator) Generate() (Result, error) {
	tree, tokens, err := g.expand(grammar.NT(g.rules.Start()), 0)
	if err != nil {
		return Result{}, err
	}

	tokens = Postprocess(tokens)

	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = strings.ToLower(t)
	}

	res := Result{
		Text:   Linearize(tokens),
		Tree:   tree,
		Field:  emotion.Fold(lowered, g.words),
		Tokens: tokens,
	}

	g.logger.Debug("Generated sentence",
		zap.String("text", res.Text),
		zap.Float64("valence", res.Field.Valence))

	return res, nil
}

// expand derives sym depth first, left to right. Random draws happen in that
// same order, which is what makes a seeded run reproducible.
func (g *Generator) expand(sym grammar.Symbol, depth int) (*Node, []string, error) {
	switch sym.Kind {
	case grammar.Nonterminal:
		rule, ok := g.rules.Rule(sym.Name)
		if !ok {
			// not expandable: emitted as is
			return leaf(sym.Name, sym.Name), []string{sym.Name}, nil
		}

		if g.maxDepth > 0 && depth > g.maxDepth {
			return nil, nil, fmt.Errorf("%w: depth %d at %s", ErrRecursionDepth, depth, sym.Name)
		}

		if len(rule.Alternatives) == 0 {
			return nil, nil, fmt.Errorf("%w: %s", ErrEmptyRule, sym.Name)
		}

		idx := g.rnd.Intn(len(rule.Alternatives))
		g.logger.Debug("Expand", zap.String("symbol", sym.Name), zap.Int("alternative", idx))

		node := &Node{Symbol: sym.Name}
		var tokens []string
		for _, s := range rule.Alternatives[idx] {
			child, toks, err := g.expand(s, depth+1)
			if err != nil {
				return nil, nil, err
			}

			node.Children = append(node.Children, child)
			tokens = append(tokens, toks...)
		}

		return node, tokens, nil

	case grammar.Slot:
		word := g.ChooseForSlot(sym.Name)
		return leaf(sym.Label(), word), []string{word}, nil

	case grammar.Literal:
		return leaf(sym.Name, sym.Name), []string{sym.Name}, nil
	}

	return nil, nil, fmt.Errorf("%w %q (kind %s) in grammar", ErrUnknownSymbol, sym.Name, sym.Kind)
}

// ChooseForSlot returns a word for the POS tag. The tag may be given with or
// without angle brackets. Unknown tags resolve to the empty string.
func (g *Generator) ChooseForSlot(tag string) string {
	tag = strings.ToUpper(strings.Trim(tag, "<>"))

	if words, ok := functionalWords[tag]; ok {
		return g.pick(words)
	}

	if tag == "DET" {
		return g.pick(determiners)
	}

	if def, ok := openClassDefault[tag]; ok {
		words := g.words.WordsForPOS(tag)
		if len(words) == 0 {
			words = []string{def}
		}

		return g.pick(words)
	}

	g.logger.Warn("Unknown POS slot", zap.String("tag", tag))
	return ""
}

// pick always consumes one draw, even for a single choice.
func (g *Generator) pick(choices []string) string {
	return choices[g.rnd.Intn(len(choices))]
}
