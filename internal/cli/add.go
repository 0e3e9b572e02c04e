package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"app-registry/internal/store"
)

func NewAddCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME PATH",
		Short: "Store a new application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]
			if name == "" || path == "" {
				return errors.New("name and path must not be empty")
			}
			return withStore(cmd, root, func(ctx context.Context, s *store.Store) error {
				if err := s.Insert(ctx, name, path); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", name)
				return err
			})
		},
	}
}
