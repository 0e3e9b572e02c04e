package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"app-registry/internal/store"
)

func NewRemoveCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete applications by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, root, func(ctx context.Context, s *store.Store) error {
				n, err := s.DeleteByName(ctx, args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries named %s\n", n, args[0])
				return err
			})
		},
	}
}
