package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jonathan/stacklyzer/internal/config"
	"github.com/spf13/cobra"
)

// commonOptions are the flags shared by commands that fetch pages.
type commonOptions struct {
	configPath string
	timeout    int
	verbose    bool
}

func (o *commonOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", "", "Path to a JSON or YAML config file (values can be overridden by other flags)")
	cmd.Flags().IntVar(&o.timeout, "timeout", 0, "Request timeout in seconds (default 15)")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "Print detailed debug information")
}

// resolve loads the config file, if any, and applies flags that were set
// explicitly. Flags always win over file values.
func (o *commonOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if o.configPath != "" {
		loaded, err := config.LoadConfig(o.configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
		if o.verbose {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Loaded config from: %s\n", o.configPath)
		}
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = o.timeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = o.verbose
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// envDefaults returns service settings taken from the environment.
func envDefaults() config.Config {
	defaults := config.Config{
		FrontendURL: os.Getenv("FRONTEND_URL"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil && port > 0 {
		defaults.Port = port
	}
	return defaults
}

// verboseWriter returns w when verbose output is on and io.Discard otherwise.
func verboseWriter(w io.Writer, verbose bool) io.Writer {
	if verbose {
		return w
	}
	return io.Discard
}
