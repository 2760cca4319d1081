package cli

import (
	"fieldservice/internal/domain/entity"

	"github.com/spf13/cobra"
)

func (r *runner) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show order statistics",
		Args:    cobra.NoArgs,
		PreRunE: r.requireRole(entity.RoleAdmin),
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := r.app.Orders.Stats(cmd.Context())
			if err != nil {
				return err
			}
			renderStats(cmd.OutOrStdout(), stats)

			return nil
		},
	}
}
