package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/expar/foundation/core/error"
	mdwlog "github.com/msto63/expar/foundation/core/log"
	"github.com/msto63/expar/foundation/expar"
	"github.com/msto63/expar/internal/tui"
)

var (
	parseFile    string
	parseFormat  string
	parseTimings bool
	keepGoing    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [expression]",
	Short: "Parse expressions and print their AST",
	Long: `Parse one or more expressions and print the lowered tree.

Input is taken from the arguments, from --file (one expression per line,
'#' starts a comment line) or from stdin.

Formats:
  symbolic - compact infix rendering (default)
  debug    - node kinds spelled out
  tree     - indented tree, one node per line

Examples:
  expar parse "(1+2)*x"
  expar parse --format tree "sin(x) ** 2"
  expar parse --file expressions.txt --keep-going`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "read expressions from file")
	parseCmd.Flags().StringVar(&parseFormat, "format", "", "output format (symbolic, debug, tree)")
	parseCmd.Flags().BoolVarP(&parseTimings, "timings", "t", false, "show parse durations")
	parseCmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "continue after a failing expression")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(parseFormat)
	if err != nil {
		return err
	}
	inputs, err := getInputs(args, parseFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	timings := parseTimings || cfg.Output.ShowTimings
	multi := len(inputs) > 1

	var results []expar.Result
	if keepGoing {
		results = engine.ParseAll(inputs)
	} else {
		for _, input := range inputs {
			start := time.Now()
			root, err := engine.Parse(input)
			if err != nil {
				return err
			}
			results = append(results, expar.Result{Input: input, Root: root, Duration: time.Since(start)})
		}
	}

	var failed []expar.Result
	for _, r := range results {
		warnIfSlow(r)
		if !r.OK() {
			failed = append(failed, r)
			fmt.Fprintf(out, "%s %s: %v\n", tui.RenderFailed(), r.Input, r.Err)
			continue
		}
		printResult(out, r, format, multi, timings)
	}

	if len(failed) > 0 {
		return mdwerror.Wrap(failed[0].Err, fmt.Sprintf("%d of %d expressions failed", len(failed), len(results)))
	}
	return nil
}

func printResult(w io.Writer, r expar.Result, format expar.Format, echo, timings bool) {
	rendered := expar.Render(r.Root, format)
	if echo {
		fmt.Fprintf(w, "%s\n", tui.InputEchoStyle.Render("> "+r.Input))
	}
	fmt.Fprintln(w, rendered)
	if timings {
		fmt.Fprintln(w, tui.SubtitleStyle.Render("  "+r.Duration.Round(time.Microsecond).String()))
	}
	if echo && strings.Contains(rendered, "\n") {
		fmt.Fprintln(w)
	}
}

// warnIfSlow logs results that took longer than the configured threshold
func warnIfSlow(r expar.Result) {
	threshold := cfg.Parser.SlowThreshold.Duration
	if threshold <= 0 || r.Duration < threshold {
		return
	}
	logger.Warn("Slow expression", mdwlog.Fields{
		"input":     r.Input,
		"duration":  r.Duration.String(),
		"threshold": threshold.String(),
	})
}
