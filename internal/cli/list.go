package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"app-registry/internal/config"
	"app-registry/internal/logger"
	"app-registry/internal/models"
	"app-registry/internal/store"
)

// ValidFormats defines the allowed list output formats.
var ValidFormats = []string{"text", "json"}

func NewListCommand(root *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every stored application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
			}
			return withStore(cmd, root, func(ctx context.Context, s *store.Store) error {
				entries, err := s.Entries(ctx)
				if err != nil {
					return err
				}
				return writeEntries(cmd.OutOrStdout(), entries, format)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format (text|json)")
	return cmd
}

func writeEntries(w io.Writer, entries []models.Entry, format string) error {
	if format == "json" {
		if entries == nil {
			entries = []models.Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry.Name); err != nil {
			return err
		}
	}
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// withStore opens the configured store for a single headless command
func withStore(cmd *cobra.Command, root *RootOptions, fn func(ctx context.Context, s *store.Store) error) error {
	cfg, log, err := root.load(cmd)
	if err != nil {
		return err
	}
	return openAndRun(commandContext(cmd), cfg, log, fn)
}

func openAndRun(ctx context.Context, cfg config.Config, log logger.Logger, fn func(ctx context.Context, s *store.Store) error) error {
	s, err := store.Open(ctx, cfg.DatabasePath, store.Options{MatchMode: cfg.MatchMode, Logger: log})
	if err != nil {
		return err
	}
	defer s.Close()

	return fn(ctx, s)
}
