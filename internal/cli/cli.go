package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/confab-dev/confab/internal/config"
	"github.com/confab-dev/confab/internal/logging"
	"github.com/confab-dev/confab/internal/pipeline"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagOutput  string
	flagDryRun  bool
	flagVerbose bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confab",
		Short: "Aggregate tech conference and CFP listings",
		Long: `Fetches conference listings from community and curated sources, merges
duplicates, classifies and geocodes them, and writes a month-grouped JSON
snapshot. New and closing CFPs are announced against the previous snapshot.`,
		SilenceUsage: true,
		RunE:         runAggregate,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (optional)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Snapshot path (overrides config)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Log notifications instead of sending them")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable development logging")

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

// loadConfig builds the effective config from file, environment, and flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagDryRun {
		cfg.Notify.DryRun = true
	}
	if flagVerbose {
		cfg.Logging.Development = true
	}
	return cfg, nil
}

func runAggregate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return err
	}

	result, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}

	logger.Info("aggregation complete",
		zap.Int("fetched", result.Fetched),
		zap.Int("conferences", result.Deduplicated),
		zap.Int("newCFPs", result.NewCFPs),
		zap.Int("closingSoon", result.ClosingSoon),
	)
	return nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
