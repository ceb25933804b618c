package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/stacklyzer/internal/compare"
	"github.com/jonathan/stacklyzer/internal/observability"
	"github.com/spf13/cobra"
)

type compareOptions struct {
	commonOptions
	jsonOutput bool
}

func newCompareCmd() *cobra.Command {
	opts := &compareOptions{}
	cmd := &cobra.Command{
		Use:   "compare <url>",
		Short: "Cross-check detection results against wappalyzergo",
		Long: `Fetch a page once, run both stacklyzer and wappalyzergo on it, and list the
technologies found by both tools and by only one of them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the comparison as JSON")
	return cmd
}

func (o *compareOptions) run(cmd *cobra.Command, rawURL string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}

	e, err := newEngine(cmd, cfg)
	if err != nil {
		return err
	}

	comparer, err := compare.New()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	page, err := e.Fetch(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}
	observability.NewPrinter(verboseWriter(cmd.ErrOrStderr(), cfg.Verbose)).PrintFetchSummary(page)

	report, err := e.AnalyzePage(ctx, page)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	result := comparer.Compare(page, report)

	if o.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintComparison(result)
	return nil
}
