package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/grammarcore/generate"
)

type nodeJSON struct {
	Symbol   string     `json:"symbol"`
	Token    *string    `json:"token,omitempty"`
	Children []nodeJSON `json:"children,omitempty"`
}

type resultJSON struct {
	Text    string   `json:"text"`
	Valence float64  `json:"valence"`
	Tokens  []string `json:"tokens"`
	Tree    nodeJSON `json:"tree"`
}

// JSONRenderer writes generation results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the results as a JSON array.
func (r *JSONRenderer) Render(results []generate.Result) {
	out := make([]resultJSON, 0, len(results))
	for _, res := range results {
		out = append(out, resultJSON{
			Text:    res.Text,
			Valence: res.Field.Valence,
			Tokens:  res.Tokens,
			Tree:    toNodeJSON(res.Tree),
		})
	}

	json.NewEncoder(r.W).Encode(out)
}

func toNodeJSON(n *generate.Node) nodeJSON {
	if n == nil {
		return nodeJSON{}
	}

	nj := nodeJSON{Symbol: n.Symbol, Token: n.Token}
	for _, ch := range n.Children {
		nj.Children = append(nj.Children, toNodeJSON(ch))
	}

	return nj
}

// compile-time interface check
var _ ResultRenderer = (*JSONRenderer)(nil)
