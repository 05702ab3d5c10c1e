package main

import (
	"github.com/revelaction/grammarcore/render"
	"github.com/revelaction/grammarcore/repl"
	"github.com/urfave/cli/v2"
)

func (e *env) replCommand(c *cli.Context) error {
	g, lex, gen, err := e.setup(c)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.Out = e.ui.Out
	r.HasColor = !c.Bool("no-color")
	if isSupported(c.String("format")) {
		r.Format = c.String("format")
	}

	hdl := repl.NewHandler(gen, g, lex, r)
	hdl.Out = e.ui.Out
	return hdl.Run()
}
