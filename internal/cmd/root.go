package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tuannvm/ultratech/internal/catalog"
	"github.com/tuannvm/ultratech/internal/config"
	"github.com/tuannvm/ultratech/internal/graph"
	"github.com/tuannvm/ultratech/internal/logging"
	"github.com/tuannvm/ultratech/internal/simulation"
	"github.com/tuannvm/ultratech/internal/universe"
)

// Commands carrying this annotation own the terminal and only log to a file.
const annotationInteractive = "interactive"

var (
	verbose    bool
	quiet      bool
	configPath string
	locale     string
	version    = "dev"

	cfg     = config.Default()
	logger  = zap.NewNop()
	printer = logging.NewPrinter(false, false)
)

var rootCmd = &cobra.Command{
	Use:   "ultratech",
	Short: "ULTRA-Tech - a universe of prime-ranked agents",
	Long: `ULTRA-Tech manages a small universe of named agents, each holding a
unique prime rank, and simulates their collaboration.

Without a subcommand the interactive dashboard is started.

Example:
  ultratech
  ultratech run Alpha:7 Beta:11 --simulate
  ultratech run Alpha:7 Beta:11 Gamma:13 --graph svg -o universe.svg
  ultratech mcp`,
	Annotations:       map[string]string{annotationInteractive: "true"},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ultratech version %s\n", version)
	},
}

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

// Execute runs the CLI until it completes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logError("%v", err)
	}
	return err
}

// ExecuteMCP runs the mcp subcommand, passing args through as flags.
func ExecuteMCP(args []string) error {
	rootCmd.SetArgs(append([]string{"mcp"}, args...))
	return Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: .ultratech/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&locale, "locale", "l", "",
		fmt.Sprintf("message locale, e.g. %s (overrides config)", strings.Join(config.OptionValues(config.LocaleOptions), ", ")))
	rootCmd.Flags().BoolVar(&accessible, "accessible", false, "accessible mode (plain prompts, no screen clearing)")

	rootCmd.AddCommand(versionCmd, uiCmd, runCmd, mcpCmd, initCmd)
}

// setup loads the config and builds the logger for the command being run.
func setup(cmd *cobra.Command, args []string) error {
	printer = logging.NewPrinterTo(cmd.OutOrStdout(), cmd.ErrOrStderr(), verbose, quiet)

	loaded, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if locale != "" {
		loaded.Locale = locale
	}
	cfg = loaded

	l, err := logging.New(logging.Options{
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		Verbose:     verbose,
		Quiet:       quiet,
		Interactive: cmd.Annotations[annotationInteractive] == "true",
	})
	if err != nil {
		return err
	}
	logger = l.With(zap.String("command", cmd.Name()))
	logger.Debug("config loaded",
		zap.String("path", configPath),
		zap.String("locale", cfg.Locale),
		zap.Duration("simulation_delay", cfg.SimulationDelay()))
	return nil
}

func verbosity() string {
	switch {
	case quiet:
		return config.VerbosityQuiet
	case verbose:
		return config.VerbosityVerbose
	default:
		return config.VerbosityNormal
	}
}

func loadCatalog(locale string) (*catalog.Catalog, error) {
	cat, err := catalog.NewLoader(cfg.MessagesDir).Load(locale)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return cat, nil
}

func newRegistry(cat *catalog.Catalog) *universe.Registry {
	return universe.NewRegistry(
		universe.WithMessages(cat.ProposalMessages()),
		universe.WithLogger(logger),
	)
}

func newRunner(cat *catalog.Catalog) *simulation.Runner {
	return simulation.NewRunner(
		simulation.WithDelay(cfg.SimulationDelay()),
		simulation.WithDetail(cat.SimulationDetail()),
		simulation.WithLogger(logger),
	)
}

func graphOptions(cat *catalog.Catalog) graph.Options {
	return graph.Options{
		Width:      cfg.Graph.Width,
		Height:     cfg.Graph.Height,
		EmptyLabel: cat.Label(catalog.KeyLabelNoGraph),
	}
}

func logInfo(format string, args ...interface{}) {
	printer.Info(format, args...)
}

func logVerbose(format string, args ...interface{}) {
	printer.Verbose(format, args...)
}

func logError(format string, args ...interface{}) {
	printer.Error(format, args...)
}
