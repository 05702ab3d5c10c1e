package generate

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
	"github.com/revelaction/grammarcore/emotion"
	"github.com/revelaction/grammarcore/grammar"
	"github.com/revelaction/grammarcore/lexicon"
)

func demoLexicon() *lexicon.Lexicon {
	lex := lexicon.New()
	lex.Add("scientist", "NOUN", 0.6)
	lex.Add("discover", "VERB", 0.7)
	lex.Add("beautiful", "ADJ", 0.8)
	return lex
}

func TestGenerateWellFormed(t *testing.T) {
	lex := demoLexicon()
	g := grammar.New()

	questions := 0
	for seed := int64(0); seed < 200; seed++ {
		gen := New(g, lex, WithSeed(seed))
		res, err := gen.Generate()
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		if res.Text == "" {
			t.Fatalf("seed %d: empty sentence", seed)
		}

		first := []rune(res.Text)[0]
		if !unicode.IsUpper(first) {
			t.Errorf("seed %d: first char not uppercase: %q", seed, res.Text)
		}

		if !strings.HasSuffix(res.Text, ".") && !strings.HasSuffix(res.Text, "?") && !strings.HasSuffix(res.Text, "!") {
			t.Errorf("seed %d: no terminal punctuation: %q", seed, res.Text)
		}

		if strings.Contains(res.Text, " ?") {
			t.Errorf("seed %d: space before question mark: %q", seed, res.Text)
		}

		if strings.HasSuffix(res.Text, "?") {
			questions++
		}

		if res.Field.Valence < -1 || res.Field.Valence > 1 {
			t.Errorf("seed %d: valence out of range: %v", seed, res.Field.Valence)
		}

		pretty := res.Tree.PrettyPrint()
		if !strings.Contains(pretty, "S") && !strings.Contains(pretty, "CLAUSE") {
			t.Errorf("seed %d: tree misses start symbol:\n%s", seed, pretty)
		}

		if res.Tree.Symbol != "S" {
			t.Errorf("seed %d: root is %q", seed, res.Tree.Symbol)
		}
	}

	if questions == 0 {
		t.Errorf("expected some questions in 200 generations")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := grammar.New()
	a := New(g, demoLexicon(), WithSeed(42))
	b := New(g, demoLexicon(), WithSeed(42))

	for i := 0; i < 20; i++ {
		ra, err := a.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		rb, err := b.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if ra.Text != rb.Text {
			t.Fatalf("run %d: text differs: %q != %q", i, ra.Text, rb.Text)
		}

		if diff := cmp.Diff(ra.Tree.PrettyPrint(), rb.Tree.PrettyPrint()); diff != "" {
			t.Fatalf("run %d: tree differs (-a +b):\n%s", i, diff)
		}

		if ra.Field != rb.Field {
			t.Fatalf("run %d: valence differs: %v != %v", i, ra.Field, rb.Field)
		}
	}
}

func TestGenerateValenceIsLeftFold(t *testing.T) {
	lex := demoLexicon()
	gen := New(grammar.New(), lex, WithSeed(7))

	for i := 0; i < 30; i++ {
		res, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := 0.0
		for _, tok := range res.Tokens {
			e, _ := lex.Get(tok)
			want = math.Tanh(want + e.Polarity)
		}

		if math.Abs(res.Field.Valence-want) > 1e-12 {
			t.Fatalf("%q: expected valence %v, got %v", res.Text, want, res.Field.Valence)
		}

		if emotion.Fold(res.Tokens, lex) != res.Field {
			t.Fatalf("%q: valence differs from emotion.Fold", res.Text)
		}
	}
}

func TestGenerateTokensMatchTree(t *testing.T) {
	gen := New(grammar.New(), demoLexicon(), WithSeed(3))

	for i := 0; i < 30; i++ {
		res, err := gen.Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if diff := cmp.Diff(Postprocess(res.Tree.Leaves()), res.Tokens); diff != "" {
			t.Fatalf("tokens differ from tree leaves (-leaves +tokens):\n%s", diff)
		}
	}
}

func TestChooseForSlot(t *testing.T) {
	gen := New(grammar.New(), lexicon.New(), WithSeed(1))

	tests := []struct {
		tag     string
		allowed []string
	}{
		{"P", []string{"with", "without", "near", "against"}},
		{"<AUX>", []string{"does", "did", "will"}},
		{"WH", []string{"why", "how", "what", "who"}},
		{"DET", []string{"the", "a", "an"}},
		{"NOUN", []string{"cat", "dog", "child", "war", "love"}},
		{"VERB", []string{"see", "like", "chase", "hate", "adore"}},
		{"adj", []string{"happy", "sad", "brave", "angry"}},
	}

	for _, tt := range tests {
		for i := 0; i < 20; i++ {
			w := gen.ChooseForSlot(tt.tag)
			found := false
			for _, a := range tt.allowed {
				if a == w {
					found = true
					break
				}
			}

			if !found {
				t.Fatalf("%s: unexpected word %q", tt.tag, w)
			}
		}
	}

	if w := gen.ChooseForSlot("ADV"); w != "" {
		t.Errorf("expected empty word for unknown slot, got %q", w)
	}
}

func TestChooseForSlotEmptyLexicon(t *testing.T) {
	gen := New(grammar.New(), lexicon.Empty(), WithSeed(1))

	tests := map[string]string{"NOUN": "cat", "VERB": "see", "ADJ": "happy"}
	for tag, want := range tests {
		if w := gen.ChooseForSlot(tag); w != want {
			t.Errorf("%s: expected fallback %q, got %q", tag, want, w)
		}
	}

	res, err := gen.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Text == "" {
		t.Fatalf("expected a sentence with an empty lexicon")
	}
}

func TestGenerateUnknownSymbol(t *testing.T) {
	g := grammar.Empty()
	g.AddRule("S", []grammar.Expansion{{grammar.NT("NP"), {}}})
	g.AddRule("NP", []grammar.Expansion{{grammar.PosSlot("NOUN", nil)}})

	_, err := New(g, lexicon.New(), WithSeed(1)).Generate()
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestGenerateEmptyRule(t *testing.T) {
	g := grammar.Empty()
	g.AddRule("S", nil)

	_, err := New(g, lexicon.New(), WithSeed(1)).Generate()
	if !errors.Is(err, ErrEmptyRule) {
		t.Fatalf("expected ErrEmptyRule, got %v", err)
	}
}

func TestGenerateRecursionDepth(t *testing.T) {
	g := grammar.Empty()
	g.AddRule("S", []grammar.Expansion{{grammar.NT("S"), grammar.Lit("again")}})

	_, err := New(g, lexicon.New(), WithSeed(1), WithMaxDepth(10)).Generate()
	if !errors.Is(err, ErrRecursionDepth) {
		t.Fatalf("expected ErrRecursionDepth, got %v", err)
	}
}

func TestGenerateUndefinedNonterminalIsLiteral(t *testing.T) {
	g := grammar.Empty()
	g.AddRule("S", []grammar.Expansion{{grammar.NT("HELLO"), grammar.Lit("world"), grammar.Lit("!")}})

	res, err := New(g, lexicon.New(), WithSeed(1)).Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Text != "HELLO world !" {
		t.Errorf("unexpected text %q", res.Text)
	}
}

func TestGenerateCustomStart(t *testing.T) {
	g := grammar.New()
	r, err := grammar.ParseRule(`GREET -> "hello" NP "!"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g.AddRule(r.LHS, r.Alternatives)
	g.SetStart("GREET")

	res, err := New(g, lexicon.New(), WithSeed(5)).Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(res.Text, "Hello ") || !strings.HasSuffix(res.Text, "!") {
		t.Errorf("unexpected text %q", res.Text)
	}

	if res.Tree.Mood() != "hello" {
		t.Errorf("expected first child hello, got %q", res.Tree.Mood())
	}
}

func TestPostprocess(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"a", "angry", "dog"}, []string{"an", "angry", "dog"}},
		{[]string{"A", "Owl"}, []string{"an", "Owl"}},
		{[]string{"a", "dog"}, []string{"a", "dog"}},
		{[]string{"an", "dog"}, []string{"an", "dog"}},
		{[]string{"see", "a"}, []string{"see", "a"}},
		{[]string{"a", ""}, []string{"a", ""}},
		{[]string{}, []string{}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Postprocess(tt.in)); diff != "" {
			t.Errorf("Postprocess(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestLinearize(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"the", "cat", "see"}, "The cat see."},
		{[]string{"why", "see", "dog", "?"}, "Why see dog?"},
		{[]string{"well", ",", "go", "!"}, "Well, go !"},
		{[]string{"stop", "."}, "Stop ."},
		{[]string{"über", "cat"}, "Über cat."},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := Linearize(tt.in); got != tt.want {
			t.Errorf("Linearize(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestPrettyPrint(t *testing.T) {
	tree := &Node{Symbol: "S", Children: []*Node{
		{Symbol: "IMP", Children: []*Node{
			{Symbol: "V", Children: []*Node{leaf("<VERB>", "see")}},
		}},
	}}

	want := "S\n  IMP\n    V\n      <VERB> → 'see'\n"
	if diff := cmp.Diff(want, tree.PrettyPrint()); diff != "" {
		t.Errorf("pretty print mismatch (-want +got):\n%s", diff)
	}

	if tree.Depth() != 4 {
		t.Errorf("expected depth 4, got %d", tree.Depth())
	}

	if tree.Mood() != "IMP" {
		t.Errorf("expected mood IMP, got %q", tree.Mood())
	}
}
