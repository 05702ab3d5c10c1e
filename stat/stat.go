package stat

import (
	"github.com/revelaction/grammarcore/generate"
)

type Handler struct {
	stats Stats

	valenceSum float64
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	ValenceMean float64
	ValenceMin  float64
	ValenceMax  float64

	// Moods counts the root expansions (CLAUSE, Q, IMP)
	Moods map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}, Moods: map[string]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(res generate.Result) {
	v := res.Field.Valence
	if h.stats.NumSentences == 0 || v < h.stats.ValenceMin {
		h.stats.ValenceMin = v
	}

	if h.stats.NumSentences == 0 || v > h.stats.ValenceMax {
		h.stats.ValenceMax = v
	}

	h.stats.NumSentences++
	h.stats.NumTokens += len(res.Tokens)
	h.stats.TokensPerSentenceDis[len(res.Tokens)]++

	if res.Tree != nil {
		h.stats.Moods[res.Tree.Mood()]++
	}

	h.valenceSum += v
	h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	h.stats.ValenceMean = h.valenceSum / float64(h.stats.NumSentences)
}
