package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/expar/foundation/core/error"
	mdwlog "github.com/msto63/expar/foundation/core/log"
	"github.com/msto63/expar/foundation/expar"
	mdwast "github.com/msto63/expar/foundation/expar/ast"
	"github.com/msto63/expar/internal/tui"
	"github.com/msto63/expar/pkg/core/cache"
	"github.com/msto63/expar/pkg/core/config"
	"github.com/msto63/expar/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

// Shared state set up by PersistentPreRunE
var (
	cfg    *config.Config
	logger *logging.Logger
	engine *expar.Engine
)

var rootCmd = &cobra.Command{
	Use:   "expar",
	Short: "expar - expression parse tree lowering",
	Long: `expar parses infix expressions and lowers their parse trees into
typed abstract syntax trees.

Commands:
  parse    - Parse expressions and print their AST
  check    - Validate expressions without printing trees
  ops      - List operators, scopes and SI prefixes
  repl     - Interactive expression shell
  version  - Show version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := rootCmd.Execute()
	closeLogger()
	if err != nil {
		printError(err)
		return exitCode(err)
	}
	return 0
}

// closeLogger releases the log file, whether or not the command succeeded
func closeLogger() {
	if logger != nil {
		_ = logger.Close()
		logger = nil
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $EXPAR_CONFIG or ./expar.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, text, console)")
}

// setup loads the configuration and builds the logger and the engine
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig(cfgFile)
	if err != nil {
		return err
	}

	if cfg.Output.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logCfg := logging.DefaultLoggerConfig(cfg.General.Name)
	logCfg.Level = cfg.General.LogLevel
	logCfg.Format = cfg.General.LogFormat
	logCfg.File = cfg.General.LogFile
	if verbose {
		logCfg.Level = "debug"
	}
	if logFormat != "" {
		logCfg.Format = logFormat
	}

	logger, err = logging.NewLogger(logCfg)
	if err != nil {
		return err
	}
	mdwlog.SetDefault(logger.Logger)

	opts := expar.Options{
		Logger:         logger.Logger,
		MaxInputLength: cfg.Parser.MaxInputLength,
		SIPrefixes:     cfg.Parser.SIPrefixes,
		SkipValidation: cfg.Parser.SkipValidation,
	}
	if cfg.Parser.CacheSize > 0 {
		opts.Cache = cache.New[mdwast.Node](cache.Config{
			MaxItems: cfg.Parser.CacheSize,
			TTL:      cfg.Parser.CacheTTL.Duration,
		})
	}

	engine, err = expar.New(opts)
	return err
}

// loadConfig reads the named file, or searches the default locations when
// path is empty. Running without any config file is fine.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	c, err := config.LoadFromEnv()
	if mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		return config.Default(), nil
	}
	return c, err
}

// exitCode maps err to a process exit code. Errors without a code are
// command line usage errors.
func exitCode(err error) int {
	var e *mdwerror.Error
	if errors.As(err, &e) {
		return e.Code().ExitCode()
	}
	return 2
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, tui.RenderError(err.Error()))
}
