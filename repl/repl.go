// Package repl is an interactive session to generate sentences and grow the
// lexicon and the grammar while doing it.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/grammarcore/generate"
	"github.com/revelaction/grammarcore/grammar"
	"github.com/revelaction/grammarcore/lexicon"
	"github.com/revelaction/grammarcore/morph"
	"github.com/revelaction/grammarcore/render"
)

const maxBatch = 100

var errQuit = errors.New("quit")

type command struct {
	name  string
	usage string
}

var commands = []command{
	{"gen", "gen [n]: generate n sentences (default 1)"},
	{"add", "add <word> <POS> [polarity]: add a word to the lexicon"},
	{"lookup", "lookup <word>: show the lexicon entry of a word"},
	{"words", "words <POS>: list the words of a part of speech"},
	{"rule", "rule <LHS -> A B | C>: add or replace a grammar rule"},
	{"rules", "rules: list the grammar rules"},
	{"morph", "morph <plural|third|past> <word>: inflect a word"},
	{"help", "help: show this help"},
	{"quit", "quit: leave the session"},
}

var inflections = map[string]func(string) string{
	"plural": morph.Pluralize,
	"third":  morph.ThirdPersonSingular,
	"past":   morph.PastTense,
}

type Handler struct {
	Generator *generate.Generator
	Grammar   *grammar.Grammar
	Lexicon   *lexicon.Lexicon
	Renderer  *render.Renderer

	Out io.Writer
}

func NewHandler(gen *generate.Generator, g *grammar.Grammar, lex *lexicon.Lexicon, r *render.Renderer) *Handler {
	return &Handler{
		Generator: gen,
		Grammar:   g,
		Lexicon:   lex,
		Renderer:  r,
		Out:       os.Stdout,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+F: next Format, Ctrl+X: toggle prefix, 🔧 help, quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      ✍  ", h.completer(),
			prompt.OptionTitle("grammarcore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Out, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintf(h.Out, "Prefix set to %t\n", h.Renderer.HasPrefix)
				}}),
		)

		history = append(history, in)

		err := h.Exec(in)
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			fmt.Fprintf(h.Out, "❌ %s\n", err)
		}
	}
}

// Exec runs a single session command. An empty line generates one sentence.
func (h *Handler) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return h.gen(1)
	}

	args := fields[1:]
	switch fields[0] {
	case "quit", "exit":
		return errQuit

	case "help":
		for _, c := range commands {
			fmt.Fprintf(h.Out, "  %s\n", c.usage)
		}
		return nil

	case "gen":
		n := 1
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 || v > maxBatch {
				return fmt.Errorf("gen needs a number between 1 and %d", maxBatch)
			}
			n = v
		}
		return h.gen(n)

	case "add":
		return h.add(args)

	case "lookup":
		if len(args) != 1 {
			return errors.New("Usage: lookup <word>")
		}

		e, ok := h.Lexicon.Get(args[0])
		if !ok {
			fmt.Fprintf(h.Out, "%s: not in lexicon\n", args[0])
			return nil
		}

		fmt.Fprintf(h.Out, "%s %s %.2f\n", strings.ToLower(args[0]), e.POS, e.Polarity)
		return nil

	case "words":
		if len(args) != 1 {
			return errors.New("Usage: words <POS>")
		}

		fmt.Fprintln(h.Out, strings.Join(h.Lexicon.WordsForPOS(args[0]), " "))
		return nil

	case "rule":
		r, err := grammar.ParseRule(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "rule")))
		if err != nil {
			return err
		}

		h.Grammar.AddRule(r.LHS, r.Alternatives)
		fmt.Fprintf(h.Out, "✔ %s\n", r)
		return nil

	case "rules":
		for _, nt := range h.Grammar.Nonterminals() {
			r, _ := h.Grammar.Rule(nt)
			fmt.Fprintln(h.Out, r)
		}
		return nil

	case "morph":
		if len(args) != 2 {
			return errors.New("Usage: morph <plural|third|past> <word>")
		}

		fn, ok := inflections[args[0]]
		if !ok {
			return fmt.Errorf("unknown inflection %q", args[0])
		}

		fmt.Fprintln(h.Out, fn(strings.ToLower(args[1])))
		return nil
	}

	return fmt.Errorf("unknown command: %s", fields[0])
}

func (h *Handler) gen(n int) error {
	for i := 0; i < n; i++ {
		res, err := h.Generator.Generate()
		if err != nil {
			return err
		}

		h.Renderer.Result(res)
	}

	return nil
}

func (h *Handler) add(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.New("Usage: add <word> <POS> [polarity]")
	}

	polarity := 0.0
	if len(args) == 3 {
		p, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid polarity: %v", err)
		}
		polarity = p
	}

	h.Lexicon.Add(args[0], args[1], polarity)
	fmt.Fprintf(h.Out, "✔ %s %s %.2f\n", strings.ToLower(args[0]), strings.ToUpper(args[1]), polarity)
	return nil
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return h.suggest(in.TextBeforeCursor())
	}
}

func (h *Handler) suggest(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}

	// Only one character in line
	if "" == befCursor {
		return s
	}

	tokens := strings.Split(befCursor, " ")
	last := tokens[len(tokens)-1]

	if len(tokens) == 1 {
		for _, c := range commands {
			if strings.HasPrefix(c.name, last) {
				s = append(s, prompt.Suggest{Text: c.name, Description: c.usage})
			}
		}
		return s
	}

	switch {
	case tokens[0] == "words" && len(tokens) == 2, tokens[0] == "add" && len(tokens) == 3:
		for _, tag := range h.Lexicon.Tags() {
			if strings.HasPrefix(tag, strings.ToUpper(last)) {
				s = append(s, prompt.Suggest{Text: tag, Description: "🔖 POS"})
			}
		}

	case tokens[0] == "lookup" && len(tokens) == 2:
		for _, w := range h.Lexicon.Words() {
			if last != "" && strings.HasPrefix(w, last) {
				s = append(s, prompt.Suggest{Text: w})
			}
		}

	case tokens[0] == "morph" && len(tokens) == 2:
		for _, name := range []string{"plural", "third", "past"} {
			if strings.HasPrefix(name, last) {
				s = append(s, prompt.Suggest{Text: name})
			}
		}
	}

	return s
}
