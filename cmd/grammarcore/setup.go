package main

import (
	"github.com/revelaction/grammarcore/file"
	"github.com/revelaction/grammarcore/generate"
	"github.com/revelaction/grammarcore/grammar"
	"github.com/revelaction/grammarcore/lexicon"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// demoWords are added at runtime to show that the lexicon grows without any
// other change.
var demoWords = []struct {
	word     string
	pos      string
	polarity float64
}{
	{"scientist", "NOUN", 0.6},
	{"discover", "VERB", 0.7},
	{"beautiful", "ADJ", 0.8},
}

// setup builds the grammar, the lexicon and the generator from the command
// line options.
func (e *env) setup(c *cli.Context) (*grammar.Grammar, *lexicon.Lexicon, *generate.Generator, error) {
	lex := lexicon.New()
	for _, w := range demoWords {
		lex.Add(w.word, w.pos, w.polarity)
	}

	if path := c.String("lexicon"); path != "" {
		if err := file.LoadLexicon(path, lex); err != nil {
			return nil, nil, nil, err
		}

		e.logger.Debug("Lexicon loaded", zap.String("path", path), zap.Int("words", lex.Len()))
	}

	g := grammar.New()
	if path := c.String("grammar"); path != "" {
		if err := file.LoadGrammar(path, g); err != nil {
			return nil, nil, nil, err
		}

		e.logger.Debug("Grammar loaded", zap.String("path", path), zap.String("start", g.Start()))
	}

	for _, nt := range g.Undefined() {
		e.logger.Warn("Nonterminal without rule is emitted as text", zap.String("symbol", nt))
	}

	gen := generate.New(g, lex,
		generate.WithSeed(c.Int64("seed")),
		generate.WithLogger(e.logger))

	return g, lex, gen, nil
}
