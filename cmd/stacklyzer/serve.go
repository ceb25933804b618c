package main

import (
	"fmt"

	"github.com/jonathan/stacklyzer/internal/server"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	commonOptions
	port        int
	frontendURL string
	databaseURL string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start an HTTP server exposing the detection API.

Settings come from flags, then the --config file, then the environment
(PORT, FRONTEND_URL, DATABASE_URL, JWT_SECRET, ANDROID_APP_SECRET, RATE_LIMIT_*).
Without a database the contact form is disabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.serverConfig(cmd)
			if err != nil {
				return err
			}

			srv, err := server.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.Start()
		},
	}

	opts.bind(cmd)
	return cmd
}

func (o *serveOptions) bind(cmd *cobra.Command) {
	o.register(cmd)
	cmd.Flags().IntVar(&o.port, "port", 0, "Port to listen on (default $PORT or 4000)")
	cmd.Flags().StringVar(&o.frontendURL, "frontend-url", "", "Allowed browser origin (default $FRONTEND_URL)")
	cmd.Flags().StringVar(&o.databaseURL, "db-url", "", "PostgreSQL connection URL (default $DATABASE_URL)")
}

// serverConfig merges flags, config file and environment into server.Config.
func (o *serveOptions) serverConfig(cmd *cobra.Command) (server.Config, error) {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return server.Config{}, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = o.port
	}
	if cmd.Flags().Changed("frontend-url") {
		cfg.FrontendURL = o.frontendURL
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = o.databaseURL
	}

	cfg = cfg.MergeWithDefaults(envDefaults())
	if err := cfg.Validate(); err != nil {
		return server.Config{}, err
	}

	return server.Config{
		Port:         cfg.Port,
		FrontendURL:  cfg.FrontendURL,
		DatabaseURL:  cfg.DatabaseURL,
		FetchOptions: cfg.FetchOptions(),
		Verbose:      cfg.Verbose,
	}, nil
}
