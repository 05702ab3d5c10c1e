package lexicon

import (
	"strings"
)

// Entry represents the lexical data of a word: its POS tag and emotional
// polarity.
type Entry struct {
	// Part of speech tag, always uppercase (NOUN, VERB, ADJ, DET)
	POS string `json:"pos" yaml:"pos"`

	// Polarity is expected in [-1, 1] but never validated
	Polarity float64 `json:"polarity" yaml:"polarity"`
}

// Lexicon maps lowercase words to their Entry.
//
// The order in which words were first inserted is kept, so that WordsForPOS
// returns a stable sequence and seeded generation is reproducible.
type Lexicon struct {
	entries map[string]Entry
	order   []string
}

// seed is the starter vocabulary, in insertion order.
var seed = []struct {
	word     string
	pos      string
	polarity float64
}{
	// determiners
	{"the", "DET", 0.0},
	{"a", "DET", 0.0},
	{"an", "DET", 0.0},

	// nouns
	{"cat", "NOUN", 0.2},
	{"dog", "NOUN", 0.3},
	{"child", "NOUN", 0.4},
	{"war", "NOUN", -0.9},
	{"love", "NOUN", 0.9},

	// verbs (base form)
	{"see", "VERB", 0.0},
	{"like", "VERB", 0.6},
	{"chase", "VERB", -0.1},
	{"hate", "VERB", -0.7},
	{"adore", "VERB", 0.8},

	// adjectives
	{"happy", "ADJ", 0.8},
	{"sad", "ADJ", -0.6},
	{"brave", "ADJ", 0.5},
	{"angry", "ADJ", -0.5},
}

// New returns a Lexicon with the starter vocabulary.
func New() *Lexicon {
	l := Empty()
	for _, s := range seed {
		l.Add(s.word, s.pos, s.polarity)
	}

	return l
}

// Empty returns a Lexicon without any word.
func Empty() *Lexicon {
	return &Lexicon{entries: map[string]Entry{}}
}

// Add stores the word with the given tag and polarity. An existing entry for
// the same word is overwritten but keeps its position.
func (l *Lexicon) Add(word, pos string, polarity float64) {
	key := strings.ToLower(word)
	if _, ok := l.entries[key]; !ok {
		l.order = append(l.order, key)
	}

	l.entries[key] = Entry{POS: strings.ToUpper(pos), Polarity: polarity}
}

// Get looks up a word case-insensitively.
func (l *Lexicon) Get(word string) (Entry, bool) {
	e, ok := l.entries[strings.ToLower(word)]
	return e, ok
}

// WordsForPOS returns all the words tagged with pos, in insertion order. The
// result is empty (nil) if no word has that tag.
func (l *Lexicon) WordsForPOS(pos string) []string {
	p := strings.ToUpper(pos)

	var words []string
	for _, w := range l.order {
		if l.entries[w].POS == p {
			words = append(words, w)
		}
	}

	return words
}

// Words returns all words in insertion order.
func (l *Lexicon) Words() []string {
	words := make([]string, len(l.order))
	copy(words, l.order)
	return words
}

// Tags returns the distinct POS tags present, in order of first appearance.
func (l *Lexicon) Tags() []string {
	seen := map[string]bool{}

	var tags []string
	for _, w := range l.order {
		pos := l.entries[w].POS
		if !seen[pos] {
			seen[pos] = true
			tags = append(tags, pos)
		}
	}

	return tags
}

func (l *Lexicon) Len() int {
	return len(l.order)
}
