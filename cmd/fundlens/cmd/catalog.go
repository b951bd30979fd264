package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantrail/fundlens/internal/catalog"
)

// newCatalogCmd creates the catalog command group.
func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the instrument catalog",
	}
	cmd.AddCommand(newCatalogValidateCmd())
	cmd.AddCommand(newCatalogStatsCmd())
	cmd.AddCommand(newCatalogExportCmd())
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the catalog and report whether it is internally consistent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cfg)
			if err != nil {
				return err
			}
			stats := snap.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d funds, %d stocks, %d holdings\n",
				stats.Funds, stats.Stocks, stats.Holdings)
			return nil
		},
	}
}

func newCatalogStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print catalog record counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cfg)
			if err != nil {
				return err
			}
			stats := snap.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "funds:    %d\n", stats.Funds)
			fmt.Fprintf(out, "stocks:   %d\n", stats.Stocks)
			fmt.Fprintf(out, "holdings: %d\n", stats.Holdings)
			return nil
		},
	}
}

func newCatalogExportCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to a SQLite database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if to == "" {
				return fmt.Errorf("--to is required")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cfg)
			if err != nil {
				return err
			}
			if err := catalog.ExportSQLite(snap, to); err != nil {
				return err
			}
			stats := snap.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d funds, %d stocks, %d holdings to %s\n",
				stats.Funds, stats.Stocks, stats.Holdings, to)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Destination SQLite file")
	return cmd
}
