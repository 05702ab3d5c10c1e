package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// set with -ldflags at build time
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func (e *env) versionCommand(c *cli.Context) error {
	_, err := fmt.Fprintf(e.ui.Out, "grammarcore version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
