package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	mdwast "github.com/msto63/expar/foundation/expar/ast"
	"github.com/msto63/expar/foundation/expar/lower"
	"github.com/msto63/expar/internal/tui"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List operators, scopes and SI prefixes",
	Long: `List the operator spellings the lowering engine accepts, in the
order they are matched, together with the bracket kinds and SI prefixes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printOperators(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(opsCmd)
}

func printOperators(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(out, tui.RenderTitle("Binary operators"))
	for _, rule := range lower.BinaryRules() {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", rule.Symbols, rule.Operator.Name(), rule.Operator)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.RenderTitle("Unary operators"))
	for _, rule := range lower.UnaryRules() {
		fmt.Fprintf(w, "  %s\t%s\n", rule.Symbols, rule.Operator.Name())
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.RenderTitle("Scopes"))
	for _, scope := range mdwast.ScopeTypes() {
		fmt.Fprintf(w, "  %s %s\t%s\n", scope.Open(), scope.Close(), scope.Name())
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.RenderTitle("SI prefixes"))
	for _, prefix := range mdwast.SiPrefixes() {
		if prefix == mdwast.SiNone {
			continue
		}
		fmt.Fprintf(w, "  %c\t%s\t%g\n", prefix.Letter(), prefix.Name(), prefix.ScalingFactor())
	}
	w.Flush()
}
