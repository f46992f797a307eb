package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/expar/foundation/core/error"
	"github.com/msto63/expar/internal/tui"
)

var checkFile string

var checkCmd = &cobra.Command{
	Use:   "check [expression]",
	Short: "Validate expressions without printing trees",
	Long: `Check parses and validates every expression and reports OK or FAILED
per expression followed by a summary. The exit status reflects the first
failure.

Examples:
  expar check "a = b + 1"
  expar check --file expressions.txt`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "read expressions from file")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputs, err := getInputs(args, checkFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var firstErr error
	failures := 0

	for _, input := range inputs {
		if err := engine.Validate(input); err != nil {
			failures++
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(out, "%-6s %s\n", tui.RenderFailed(), input)
			fmt.Fprintf(out, "       %v\n", err)
			continue
		}
		fmt.Fprintf(out, "%-6s %s\n", tui.RenderOK(), input)
	}

	fmt.Fprintf(out, "\n%d of %d expressions valid\n", len(inputs)-failures, len(inputs))

	if firstErr != nil {
		return mdwerror.Wrap(firstErr, fmt.Sprintf("%d expressions failed", failures))
	}
	return nil
}
