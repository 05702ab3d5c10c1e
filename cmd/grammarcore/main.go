package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "grammarcore: %v\n", err)
}

// env is the state shared by the commands of a run.
type env struct {
	ui     UI
	logger *zap.Logger
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui, logger: zap.NewNop()}

	return &cli.App{
		Name:                 "grammarcore",
		Usage:                "generate random sentences from a small grammar and score their emotion valence",
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		// errors are printed by main
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "demo",
				Usage: "generate sample sentences",
			},
			&cli.Int64Flag{
				Name:    "seed",
				Value:   7,
				Usage:   "seed of the random stream",
				EnvVars: []string{"GRAMMARCORE_SEED"},
			},
			&cli.IntFlag{
				Name:    "n",
				Value:   5,
				Usage:   "number of sentences of the demo",
				EnvVars: []string{"GRAMMARCORE_N"},
			},
			&cli.StringFlag{
				Name:    "lexicon",
				Aliases: []string{"l"},
				Usage:   "YAML lexicon file or directory with additional words",
				EnvVars: []string{"GRAMMARCORE_LEXICON"},
			},
			&cli.StringFlag{
				Name:    "grammar",
				Aliases: []string{"g"},
				Usage:   "YAML grammar file or directory with additional rules",
				EnvVars: []string{"GRAMMARCORE_GRAMMAR"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "tree",
				Usage:   "output format: tree, text, plain or json",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "show a progress bar while generating",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every expansion step",
			},
		},
		Before: func(c *cli.Context) error {
			e.logger = newLogger(ui.Err, c.Bool("verbose"))

			if err := selfCheck(); err != nil {
				return fmt.Errorf("self check failed: %w", err)
			}

			e.logger.Debug("Self checks passed")
			return nil
		},
		After: func(c *cli.Context) error {
			_ = e.logger.Sync()
			return nil
		},
		Action: e.demoCommand,
		Commands: []*cli.Command{
			{
				Name:   "repl",
				Usage:  "interactive session: generate, add words and rules",
				Action: e.replCommand,
			},
			{
				Name:   "version",
				Usage:  "print the version",
				Action: e.versionCommand,
			},
		},
	}
}

// newLogger writes human readable logs to w. Warnings are always shown,
// debug logs only if verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core)
}
