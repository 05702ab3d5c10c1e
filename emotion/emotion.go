// Package emotion aggregates word polarities into a sentence valence.
package emotion

import (
	"math"

	"github.com/revelaction/grammarcore/lexicon"
)

// Lookup is the lexicon capability needed to score words.
type Lookup interface {
	Get(word string) (lexicon.Entry, bool)
}

var _ Lookup = (*lexicon.Lexicon)(nil)

// Field is an emotional valence, kept in [-1, 1] by Combine.
type Field struct {
	Valence float64 `json:"valence"`
}

var Neutral = Field{}

// FromWord returns the polarity of word, or a neutral field if the lexicon
// does not know it.
func FromWord(word string, lex Lookup) Field {
	e, ok := lex.Get(word)
	if !ok {
		return Neutral
	}

	return Field{Valence: e.Polarity}
}

// Combine adds both valences and squashes the sum with tanh.
func (f Field) Combine(other Field) Field {
	return Field{Valence: math.Tanh(f.Valence + other.Valence)}
}

// Fold combines the fields of words from left to right, starting from
// Neutral:
//
//	tanh(tanh(tanh(0+p1)+p2)+p3)
func Fold(words []string, lex Lookup) Field {
	f := Neutral
	for _, w := range words {
		f = f.Combine(FromWord(w, lex))
	}

	return f
}
