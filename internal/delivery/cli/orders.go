package cli

import (
	"fmt"
	"os"

	"fieldservice/internal/domain/entity"
	"fieldservice/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (r *runner) ordersCommand() *cobra.Command {
	var filter entity.OrderFilter
	var status string

	cmd := &cobra.Command{
		Use:     "orders",
		Short:   "List orders",
		Long:    `List the orders visible to the logged-in account: a technician sees their own, an admin sees all of them.`,
		Args:    cobra.NoArgs,
		PreRunE: r.requireSession,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter.Status = entity.OrderStatus(status)
			orders, err := r.app.Orders.ListOrders(cmd.Context(), filter)
			if err != nil {
				return err
			}
			renderOrders(cmd.OutOrStdout(), orders, r.now())

			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only orders in this status")
	cmd.Flags().StringVar(&filter.ID, "id", "", "only the order with this id")
	cmd.AddCommand(r.createOrderCommand())

	return cmd
}

func (r *runner) createOrderCommand() *cobra.Command {
	var order entity.NewOrder

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create an order for a technician",
		Args:    cobra.NoArgs,
		PreRunE: r.requireRole(entity.RoleAdmin),
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := r.app.Orders.CreateOrder(cmd.Context(), order)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created order %s for %s\n", created.IDString(), created.TechnicianName)

			return nil
		},
	}

	cmd.Flags().Int64Var(&order.TechnicianID, "technician-id", 0, "technician account id")
	cmd.Flags().StringVar(&order.TechnicianName, "technician-name", "", "technician display name")
	cmd.Flags().IntVar(&order.Hours, "hours", 1, "hours until the order expires")

	return cmd
}

func (r *runner) orderCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "order ID",
		Short:   "Show an order with its evidence",
		Args:    cobra.ExactArgs(1),
		PreRunE: r.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := r.app.Orders.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderOrder(cmd.OutOrStdout(), order, r.now())

			return nil
		},
	}
}

func (r *runner) qrCommand() *cobra.Command {
	var token, out string

	cmd := &cobra.Command{
		Use:   "qr ID",
		Short: "Write the QR code that opens an order",
		Long: `Render the order's open link as a PNG QR code. Without --jwt the order
token is taken from the logged-in technician's order listing.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: r.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			qr, err := r.app.Orders.OpenLinkQR(cmd.Context(), args[0], token)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = util.SafeFilename("orden_"+args[0]+"_qr.png", "orden_qr.png")
			}
			if err := os.WriteFile(path, qr.PNG, 0o600); err != nil {
				return errors.Wrapf(err, "write %s", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", path, util.FormatBytes(int64(len(qr.PNG))))

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "jwt", "", "order token; defaults to the one in your order listing")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default orden_<id>_qr.png)")

	return cmd
}

func (r *runner) pdfCommand() *cobra.Command {
	var (
		full, archive bool
		out           string
	)

	cmd := &cobra.Command{
		Use:     "pdf ID",
		Short:   "Download an order report",
		Args:    cobra.ExactArgs(1),
		PreRunE: r.requireRole(entity.RoleAdmin),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := r.app.Reports.Download(cmd.Context(), args[0], full, archive)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = report.Document.Filename
			}
			if err := os.WriteFile(path, report.Document.Data, 0o600); err != nil {
				return errors.Wrapf(err, "write %s", path)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Wrote %s (%s)\n", path, util.FormatBytes(int64(len(report.Document.Data))))
			if report.ArchiveKey != "" {
				fmt.Fprintf(w, "Archived as %s\n", report.ArchiveKey)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "include the evidence files")
	cmd.Flags().BoolVar(&archive, "archive", false, "also store a copy in the report bucket")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: the server's filename)")

	return cmd
}

func (r *runner) auditsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "audits ID",
		Short:   "Show the audit trail of an order",
		Args:    cobra.ExactArgs(1),
		PreRunE: r.requireRole(entity.RoleAdmin),
		RunE: func(cmd *cobra.Command, args []string) error {
			audits, err := r.app.Orders.Audits(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderAudits(cmd.OutOrStdout(), audits)

			return nil
		},
	}
}
