package cmd

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/expar/foundation/core/error"
	mdwlog "github.com/msto63/expar/foundation/core/log"
	"github.com/msto63/expar/foundation/expar"
	"github.com/msto63/expar/internal/tui"
)

var replFormat string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive expression shell",
	Long: `Start an interactive shell that parses each entered line and shows
the lowered tree.

Keys:
  Enter   parse the current line
  Up/Down recall earlier lines
  Tab     switch output format
  Ctrl+O  show the operator table
  Ctrl+L  clear the history
  Esc     quit`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringVar(&replFormat, "format", "", "initial output format (symbolic, debug, tree)")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(replFormat)
	if err != nil {
		return err
	}

	replEngine, err := quietEngine()
	if err != nil {
		return err
	}

	previous := mdwlog.GetDefault()
	if cfg.General.LogFile == "" {
		mdwlog.SetDefault(previous.WithOutput(io.Discard))
	}
	defer mdwlog.SetDefault(previous)

	p := tea.NewProgram(tui.NewModel(replEngine, format), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return mdwerror.Wrap(err, "interactive shell failed").WithCode(mdwerror.CodeInternal)
	}
	return nil
}

// quietEngine returns an engine whose log output cannot reach the terminal.
// Without a log file, entries would be drawn over the alternate screen, so
// they are dropped for the lifetime of the shell.
func quietEngine() (*expar.Engine, error) {
	if cfg.General.LogFile != "" {
		return engine, nil
	}
	opts := engine.Options()
	opts.Logger = logger.WithOutput(io.Discard)
	return expar.New(opts)
}
