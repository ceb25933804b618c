// Package main provides the stacklyzer command line: the HTTP API server and
// one-shot website technology analysis.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stacklyzer",
		Short: "Website technology stack detector",
		Long: `Stacklyzer fetches a web page and reports the frameworks, libraries, server software,
analytics, CMS, e-commerce platforms and build tools it finds evidence of.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newMessagesCmd())
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
