package cli

import (
	"fmt"

	"fieldservice/internal/infra/camera"

	"github.com/spf13/cobra"
)

func (r *runner) scanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan FILE...",
		Short: "Read an order QR code from image files",
		Long: `Decode the given images in order until one carries a valid order link,
then print the order id and the route that opens it. Images without a valid
link are reported and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := camera.NewFileSource(args...)
			target, err := r.app.Scanner.Scan(cmd.Context(), source, func(err error) {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %s\n", ErrorMessage(err))
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Order: %s\n", target.OrderID)
			fmt.Fprintf(out, "Open:  %s\n", target.Path())

			return nil
		},
	}
}
