package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/grammarcore/generate"
	"github.com/revelaction/grammarcore/render"
	"github.com/revelaction/grammarcore/stat"
	"github.com/urfave/cli/v2"
)

func (e *env) demoCommand(c *cli.Context) error {
	if c.NArg() > 0 {
		return fmt.Errorf("unknown command: %s", c.Args().First())
	}

	format := c.String("format")
	if format != "json" && !isSupported(format) {
		return fmt.Errorf("allowed formats are %s, json", strings.Join(render.SupportedFormats(), ", "))
	}

	// checks already ran in Before
	if format != "json" {
		fmt.Fprintln(e.ui.Out, "✔ Self checks passed.")
	}

	if !c.Bool("demo") {
		return nil
	}

	n := c.Int("n")
	if n < 0 {
		return fmt.Errorf("invalid number of sentences: %d", n)
	}

	_, _, gen, err := e.setup(c)
	if err != nil {
		return err
	}

	results, err := generateAll(gen, n, c.Bool("progress"))
	if err != nil {
		return err
	}

	if format == "json" {
		render.NewJSONRenderer(e.ui.Out).Render(results)
		return nil
	}

	r := render.NewRenderer()
	r.Out = e.ui.Out
	r.HasColor = !c.Bool("no-color")
	r.Format = format
	r.Render(results)

	hdl := stat.NewHandler()
	for _, res := range results {
		hdl.Aggregate(res)
	}

	printStats(e.ui, hdl.Get())
	return nil
}

func generateAll(gen *generate.Generator, n int, progress bool) ([]generate.Result, error) {
	var bar *uiprogress.Bar
	if progress && n > 0 {
		// Start progress indicator
		uiprogress.Start()
		bar = uiprogress.AddBar(n)
		bar.AppendCompleted()
		bar.PrependElapsed()
		defer uiprogress.Stop()
	}

	results := make([]generate.Result, 0, n)
	for i := 0; i < n; i++ {
		res, err := gen.Generate()
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i+1, err)
		}

		results = append(results, res)

		if bar != nil {
			bar.Incr()
		}
	}

	return results, nil
}

func printStats(ui UI, stats stat.Stats) {
	if stats.NumSentences == 0 {
		return
	}

	moods := []string{}
	for mood, count := range stats.Moods {
		moods = append(moods, fmt.Sprintf("%s=%d", mood, count))
	}
	sort.Strings(moods)

	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens per sentence %d, valence mean %.2f [%.2f, %.2f], %s\n",
		stats.NumSentences, stats.TokensPerSentenceMean, stats.ValenceMean, stats.ValenceMin, stats.ValenceMax, strings.Join(moods, " "))
}

func isSupported(format string) bool {
	for _, f := range render.SupportedFormats() {
		if f == format {
			return true
		}
	}

	return false
}
