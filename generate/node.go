package generate

import (
	"strings"
)

// Node is a node of a derivation tree. Leaves carry the emitted token.
type Node struct {
	Symbol   string
	Children []*Node
	Token    *string
}

func leaf(symbol, token string) *Node {
	return &Node{Symbol: symbol, Token: &token}
}

func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

// PrettyPrint dumps the tree one node per line, indented two spaces per
// level. Leaves are rendered as SYMBOL → 'token'.
func (n *Node) PrettyPrint() string {
	var str strings.Builder
	n.pretty(&str, 0)
	return str.String()
}

func (n *Node) pretty(str *strings.Builder, depth int) {
	str.WriteString(strings.Repeat("  ", depth))
	if n.IsLeaf() {
		str.WriteString(n.Symbol + " → '" + *n.Token + "'\n")
		return
	}

	str.WriteString(n.Symbol + "\n")
	for _, ch := range n.Children {
		ch.pretty(str, depth+1)
	}
}

// Leaves returns the tokens of the leaves, left to right.
func (n *Node) Leaves() []string {
	if n.IsLeaf() {
		return []string{*n.Token}
	}

	var tokens []string
	for _, ch := range n.Children {
		tokens = append(tokens, ch.Leaves()...)
	}

	return tokens
}

// Mood is the symbol chosen for the root expansion (CLAUSE, Q or IMP with the
// starter grammar). It is empty for a leaf root.
func (n *Node) Mood() string {
	if n.IsLeaf() || len(n.Children) == 0 {
		return ""
	}

	return n.Children[0].Symbol
}

// Depth is the number of levels of the tree.
func (n *Node) Depth() int {
	deepest := 0
	for _, ch := range n.Children {
		if d := ch.Depth(); d > deepest {
			deepest = d
		}
	}

	return deepest + 1
}
