package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantrail/fundlens/internal/output"
	"github.com/quantrail/fundlens/internal/ui"
)

// newSearchCmd creates the search command for one-shot queries.
func newSearchCmd() *cobra.Command {
	var (
		limit      int
		format     string
		delay      time.Duration
		randomMode bool
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a single natural-language query against the catalog",
		Long: `Run one query and print the ranked results.

Examples:
  fundlens search "best performing funds"
  fundlens search "funds with aum greater than 1000 cr" --limit 5
  fundlens search "which funds are holding HDFC Bank" --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if limit > 0 {
				cfg.Search.MaxResults = limit
			}
			if format != "" {
				cfg.Output.Format = format
			}
			if randomMode {
				cfg.Estimates.Mode = "random"
				cfg.Estimates.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			engine, _, err := buildEngine(cfg)
			if err != nil {
				return err
			}

			if delay > 0 {
				time.Sleep(delay)
			}

			start := time.Now()
			results, err := engine.ProcessQuery(cmd.Context(), query)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			if cfg.Search.MaxResults > 0 && len(results) > cfg.Search.MaxResults {
				results = results[:cfg.Search.MaxResults]
			}

			noColor := flagNoColor || cfg.Output.NoColor || !ui.IsTTY(cmd.OutOrStdout())
			r := output.NewRenderer(cmd.OutOrStdout(), noColor)

			if cfg.Output.Format == "json" {
				return r.RenderJSON(results)
			}
			r.RenderPretty(results)
			r.Summary("%d result(s) in %dms", len(results), elapsed.Milliseconds())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (default from config)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: pretty or json")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Artificial delay before answering, e.g. 500ms")
	cmd.Flags().BoolVar(&randomMode, "random", false, "Use randomized instead of deterministic estimates")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for --random (0 seeds from the current time)")

	return cmd
}
