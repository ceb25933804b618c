package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/stacklyzer/internal/config"
	"github.com/jonathan/stacklyzer/internal/engine"
	"github.com/jonathan/stacklyzer/internal/observability"
	"github.com/jonathan/stacklyzer/internal/schemas"
	"github.com/jonathan/stacklyzer/internal/types"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	commonOptions
	jsonOutput bool
	validate   bool
	out        string
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Detect the technology stack of a website",
		Long: `Fetch a single page and print the technologies detected on it.

The URL may omit the scheme, in which case https:// is assumed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Validate the report against schemas/analysis_report.schema.json")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Also write the JSON report to this file")
	return cmd
}

func (o *analyzeOptions) run(cmd *cobra.Command, rawURL string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}

	e, err := newEngine(cmd, cfg)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	verbose := observability.NewPrinter(verboseWriter(cmd.ErrOrStderr(), cfg.Verbose))

	page, err := e.Fetch(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	verbose.PrintFetchSummary(page)

	report, err := e.AnalyzePage(ctx, page)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if o.validate {
		if err := schemas.ValidateReport(report); err != nil {
			return fmt.Errorf("report failed schema validation: %w", err)
		}
		verbose.PrintCategories(report.Summary)
	}

	if o.out != "" {
		if err := writeReport(o.out, report); err != nil {
			return err
		}
	}

	if o.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintReport(report)
	printer.PrintCategories(report.Summary)
	return nil
}

// newEngine builds an engine from resolved settings. Verbose mode routes
// engine logs to stderr.
func newEngine(cmd *cobra.Command, cfg config.Config) (*engine.Engine, error) {
	opts := []engine.Option{engine.WithFetchOptions(cfg.FetchOptions())}
	if cfg.Verbose {
		opts = append(opts, engine.WithLogger(log.New(cmd.ErrOrStderr(), "", log.LstdFlags)))
	}
	e, err := engine.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return e, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func writeReport(path string, report *types.AnalysisReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
