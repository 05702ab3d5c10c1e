// Package file reads lexicon and grammar extension files. A path can be a
// single YAML file or a directory; all the .yaml/.yml files of a directory are
// read in name order.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/revelaction/grammarcore/grammar"
	"github.com/revelaction/grammarcore/lexicon"
	"gopkg.in/yaml.v3"
)

// WordEntry is a lexicon file item:
//
//	words:
//	  - {word: scientist, pos: NOUN, polarity: 0.6}
type WordEntry struct {
	Word     string  `yaml:"word"`
	POS      string  `yaml:"pos"`
	Polarity float64 `yaml:"polarity"`
}

type LexiconFile struct {
	Words []WordEntry `yaml:"words"`
}

// GrammarFile contains rules in the syntax of grammar.ParseRule:
//
//	start: S
//	rules:
//	  - EXCL -> WOW <ADJ> "!"
type GrammarFile struct {
	Start string   `yaml:"start"`
	Rules []string `yaml:"rules"`
}

// Names returns the YAML files found at path: path itself if it is a file,
// or the sorted YAML files of the directory.
func Names(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s", path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, f := range files {
		if f.IsDir() {
			continue
		}

		ext := filepath.Ext(f.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		names = append(names, filepath.Join(path, f.Name()))
	}

	sort.Strings(names)
	return names, nil
}

func ReadLexicon(path string) (LexiconFile, error) {
	var lf LexiconFile
	if err := read(path, &lf); err != nil {
		return LexiconFile{}, err
	}

	return lf, nil
}

// Apply adds the words of the file to lex. Files are validated before
// anything is added.
func (lf LexiconFile) Apply(lex *lexicon.Lexicon) error {
	if err := lf.validate(); err != nil {
		return err
	}

	lf.add(lex)
	return nil
}

func (lf LexiconFile) validate() error {
	for i, w := range lf.Words {
		if w.Word == "" {
			return fmt.Errorf("word %d: empty word", i)
		}

		if w.POS == "" {
			return fmt.Errorf("word %d (%s): empty pos", i, w.Word)
		}
	}

	return nil
}

func (lf LexiconFile) add(lex *lexicon.Lexicon) {
	for _, w := range lf.Words {
		lex.Add(w.Word, w.POS, w.Polarity)
	}
}

func ReadGrammar(path string) (GrammarFile, error) {
	var gf GrammarFile
	if err := read(path, &gf); err != nil {
		return GrammarFile{}, err
	}

	return gf, nil
}

// Apply parses all the rules and checks the start symbol. Only if the whole
// file is valid are the rules added to g.
func (gf GrammarFile) Apply(g *grammar.Grammar) error {
	rules, err := gf.parse(g.Has)
	if err != nil {
		return err
	}

	gf.add(g, rules)
	return nil
}

// parse returns the rules of the file. The start symbol must be defined by
// the file itself or be known to has.
func (gf GrammarFile) parse(has func(string) bool) ([]grammar.Rule, error) {
	var rules []grammar.Rule
	defined := map[string]bool{}
	for _, line := range gf.Rules {
		r, err := grammar.ParseRule(line)
		if err != nil {
			return nil, err
		}

		rules = append(rules, r)
		defined[r.LHS] = true
	}

	if gf.Start != "" && !defined[gf.Start] && !has(gf.Start) {
		return nil, fmt.Errorf("start symbol %s has no rule", gf.Start)
	}

	return rules, nil
}

func (gf GrammarFile) add(g *grammar.Grammar, rules []grammar.Rule) {
	for _, r := range rules {
		g.AddRule(r.LHS, r.Alternatives)
	}

	if gf.Start != "" {
		g.SetStart(gf.Start)
	}
}

// LoadLexicon reads all lexicon files at path into lex. Nothing is added if
// any of the files is invalid.
func LoadLexicon(path string, lex *lexicon.Lexicon) error {
	names, err := Names(path)
	if err != nil {
		return err
	}

	var files []LexiconFile
	for _, name := range names {
		lf, err := ReadLexicon(name)
		if err != nil {
			return err
		}

		if err := lf.validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		files = append(files, lf)
	}

	for _, lf := range files {
		lf.add(lex)
	}

	return nil
}

// LoadGrammar reads all grammar files at path into g. A start symbol may be
// defined by an earlier file of the same directory. Nothing is added if any
// of the files is invalid.
func LoadGrammar(path string, g *grammar.Grammar) error {
	names, err := Names(path)
	if err != nil {
		return err
	}

	defined := map[string]bool{}
	has := func(nt string) bool {
		return defined[nt] || g.Has(nt)
	}

	var files []GrammarFile
	var parsed [][]grammar.Rule
	for _, name := range names {
		gf, err := ReadGrammar(name)
		if err != nil {
			return err
		}

		rules, err := gf.parse(has)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		for _, r := range rules {
			defined[r.LHS] = true
		}

		files = append(files, gf)
		parsed = append(parsed, rules)
	}

	for i, gf := range files {
		gf.add(g, parsed[i])
	}

	return nil
}

func read(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return errors.New("empty file: " + path)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}
