package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"paycheck-engine/internal/config"
	"paycheck-engine/internal/engine"
	"paycheck-engine/internal/logging"
	"paycheck-engine/internal/taxtable"
)

var (
	version = "dev"

	flagConfig string
	flagFormat string

	v      = config.New()
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "paycalc",
	Short: "Paycheck cash-flow projections for retirement and tax planning",
	Long: `paycalc projects a year of paychecks: withholding, FICA caps, retirement
and FSA limits, and the investable remainder of every pay period.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(v, flagConfig)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./paycalc.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "log format (json, console)")
	rootCmd.PersistentFlags().String("tax-tables-url", "", "remote tax table service")
	rootCmd.PersistentFlags().Int("tax-year", 0, "tax year for plans that do not name one")

	_ = v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag("tax_tables.url", rootCmd.PersistentFlags().Lookup("tax-tables-url"))
	_ = v.BindPFlag("defaults.tax_year", rootCmd.PersistentFlags().Lookup("tax-year"))

	rootCmd.AddCommand(serveCmd, projectCmd, compareCmd, simulateCmd, tablesCmd, versionCmd)
}

func newRegistry() *taxtable.Registry {
	return taxtable.NewRegistry(cfg.TaxTables.URL, cfg.TaxTables.Timeout, logger)
}

func newProcessor() *engine.Processor {
	return engine.NewProcessor(newRegistry(), cfg.Defaults.TaxYear, logger)
}

func addFormatFlag(cmd *cobra.Command, formats string) {
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "output format ("+formats+")")
}
