// Package cmd provides the CLI commands for FundLens.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantrail/fundlens/internal/config"
	"github.com/quantrail/fundlens/internal/logging"
	"github.com/quantrail/fundlens/internal/ui"
	"github.com/quantrail/fundlens/pkg/version"
)

var (
	flagCatalog string
	flagNoColor bool
	debugMode   bool

	loggingCleanup func()
)

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the root command for the fundlens CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fundlens",
		Short: "Natural-language search over a mutual fund and stock catalog",
		Long: `FundLens answers free-text questions about mutual funds and stocks:
"tax saving funds", "funds with aum greater than 1000 cr",
"which funds are holding HDFC Bank", "compare icici vs sbi funds".

Every result explains why it matched. Running fundlens with no arguments
in a terminal starts the interactive prompt.`,
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return runExplore(cmd)
		},
	}

	cmd.SetVersionTemplate("fundlens version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Catalog file (default: embedded dataset)")
	cmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.fundlens/logs/")

	cmd.PersistentPreRunE = setupLogging
	cmd.PersistentPostRunE = teardownLogging

	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// runExplore starts the interactive prompt, the zero-argument default.
func runExplore(cmd *cobra.Command) error {
	if !ui.IsTTY(cmd.OutOrStdout()) {
		return fmt.Errorf("no query given and stdout is not a terminal; try 'fundlens search \"your query\"'")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine, _, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	delay, err := cfg.DemoDelay()
	if err != nil {
		return err
	}

	return ui.RunExplore(ui.ExploreConfig{
		Engine:  engine,
		Limit:   cfg.Search.MaxResults,
		Delay:   delay,
		NoColor: flagNoColor || cfg.Output.NoColor,
	})
}

func setupLogging(_ *cobra.Command, _ []string) error {
	if !debugMode {
		return nil
	}
	cleanup, err := logging.SetupDefault("debug")
	if err != nil {
		return fmt.Errorf("failed to setup debug logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.Info("Debug logging enabled",
		slog.String("log_file", logging.DefaultLogPath()),
		slog.String("version", version.Version))
	return nil
}

func teardownLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// loadConfig layers config sources and applies the global --catalog flag on
// top as the highest-precedence override.
func loadConfig() (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if flagCatalog != "" {
		cfg.Catalog.Path = flagCatalog
	}
	return cfg, nil
}
