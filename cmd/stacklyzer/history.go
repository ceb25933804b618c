package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/stacklyzer/internal/db"
	"github.com/spf13/cobra"
)

// storeOptions are the flags of commands that read the service database.
type storeOptions struct {
	databaseURL string
	limit       int
	jsonOutput  bool
}

func (o *storeOptions) register(cmd *cobra.Command, defaultLimit int) {
	cmd.Flags().StringVar(&o.databaseURL, "db-url", "", "PostgreSQL connection URL (default $DATABASE_URL)")
	cmd.Flags().IntVar(&o.limit, "limit", defaultLimit, "Maximum number of rows to show")
	cmd.Flags().BoolVar(&o.jsonOutput, "json", false, "Print rows as JSON")
}

func (o *storeOptions) connect(ctx context.Context) (*db.DB, error) {
	databaseURL := o.databaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Connect(ctx, databaseURL)
}

func newHistoryCmd() *cobra.Command {
	opts := &storeOptions{}
	cmd := &cobra.Command{
		Use:   "history <url>",
		Short: "Show recorded scans of a website",
		Long: `List the scans the API server recorded for a URL, newest first.

The URL must match the report URL exactly, e.g. https://example.com.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			database, err := opts.connect(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			scans, err := database.ListScans(ctx, args[0], opts.limit)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				type scanJSON struct {
					ID        uuid.UUID       `json:"id"`
					CreatedAt time.Time       `json:"createdAt"`
					Report    json.RawMessage `json:"report"`
				}
				rows := make([]scanJSON, 0, len(scans))
				for _, s := range scans {
					rows = append(rows, scanJSON{ID: s.ID, CreatedAt: s.CreatedAt, Report: s.Report})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			if len(scans) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No scans recorded for %s\n", args[0])
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "SCANNED\tTECHNOLOGIES\tIDS")
			for _, s := range scans {
				ids := "-"
				if report, err := s.DecodeReport(); err == nil && len(report.IDs()) > 0 {
					ids = fmt.Sprint(report.IDs())
				}
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\n", s.CreatedAt.UTC().Format(time.RFC3339), s.TotalTechnologies, ids)
			}
			return tw.Flush()
		},
	}

	opts.register(cmd, 20)
	return cmd
}

func newMessagesCmd() *cobra.Command {
	opts := &storeOptions{}
	var deleteID string

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List or delete contact form messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var id uuid.UUID
			if deleteID != "" {
				parsed, err := uuid.Parse(deleteID)
				if err != nil {
					return fmt.Errorf("invalid message id: %w", err)
				}
				id = parsed
			}

			ctx := commandContext(cmd)
			database, err := opts.connect(ctx)
			if err != nil {
				return err
			}
			defer database.Close()

			if deleteID != "" {
				msg, err := database.GetContactMessage(ctx, id)
				if err != nil {
					return err
				}
				if msg == nil {
					return fmt.Errorf("message %s not found", id)
				}
				if err := database.DeleteContactMessage(ctx, id); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted message %s from %s\n", id, msg.Email)
				return nil
			}

			messages, err := database.ListContactMessages(ctx, opts.limit)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				if messages == nil {
					messages = []db.ContactMessage{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(messages)
			}

			if len(messages) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No messages")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tRECEIVED\tPLATFORM\tFROM\tMESSAGE")
			for _, m := range messages {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s <%s>\t%s\n",
					m.ID, m.CreatedAt.UTC().Format(time.RFC3339), m.Platform, m.Name, m.Email, oneLine(m.Message, 40))
			}
			return tw.Flush()
		},
	}

	opts.register(cmd, 50)
	cmd.Flags().StringVar(&deleteID, "delete", "", "Delete the message with this id")
	return cmd
}

// oneLine flattens s and cuts it to n runes.
func oneLine(s string, n int) string {
	r := []rune(s)
	for i, c := range r {
		if c == '\n' || c == '\r' || c == '\t' {
			r[i] = ' '
		}
	}
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return string(r)
}
