package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/grammarcore/generate"
)

const (
	Defaultformat = "tree"
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Gray      = "\033[0;37m"
	Off       = "\033[0m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Yellow256 = "\033[1;38;5;130m"
)

// ResultRenderer writes generation results.
type ResultRenderer interface {
	Render(results []generate.Result)
}

var _ ResultRenderer = (*Renderer)(nil)

// SupportedFormats are the formats of the text Renderer
//
// tree: sentence, valence and derivation tree
// text: sentence and valence
// plain: sentence only
func SupportedFormats() []string {
	return []string{"tree", "text", "plain"}
}

type Renderer struct {
	Out io.Writer

	HasColor bool

	// HasPrefix prepends the [n] sentence number
	HasPrefix bool

	Format string

	// count of sentences rendered, used for the prefix
	n int
}

func NewRenderer() *Renderer {
	return &Renderer{Out: os.Stdout, HasPrefix: true, Format: Defaultformat}
}

func (r *Renderer) Render(results []generate.Result) {
	for _, res := range results {
		r.Result(res)
	}
}

// Result renders a single generation result.
func (r *Renderer) Result(res generate.Result) {
	r.n++

	prefix := ""
	if r.HasPrefix {
		prefix = fmt.Sprintf("[%d] ", r.n)
	}

	switch r.Format {
	case "plain":
		fmt.Fprintf(r.Out, "%s%s\n", prefix, res.Text)
	case "text":
		fmt.Fprintf(r.Out, "%s%s  \t(valence=%s)\n", prefix, res.Text, r.valence(res.Field.Valence))
	default:
		fmt.Fprintf(r.Out, "%s%s  \t(valence=%s)\n", prefix, res.Text, r.valence(res.Field.Valence))
		fmt.Fprintln(r.Out, r.Tree(res.Tree))
	}
}

// Tree returns the pretty printed derivation, with the emitted tokens
// highlighted if HasColor.
func (r *Renderer) Tree(tree *generate.Node) string {
	pretty := tree.PrettyPrint()
	if !r.HasColor {
		return pretty
	}

	lines := strings.Split(strings.TrimSuffix(pretty, "\n"), "\n")
	for i, l := range lines {
		before, token, found := strings.Cut(l, " → ")
		if !found {
			lines[i] = Grey256 + l + Off
			continue
		}

		lines[i] = before + " → " + Green256 + token + Off
	}

	return strings.Join(lines, "\n") + "\n"
}

func (r *Renderer) valence(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if !r.HasColor {
		return s
	}

	switch {
	case v > 0:
		return Green + s + Off
	case v < 0:
		return Red + s + Off
	default:
		return Gray + s + Off
	}
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
