package cli

import (
	"context"
	"time"

	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type runner struct {
	load Loader
	app  *App
	now  func() time.Time
}

// Execute runs fieldctl with the process arguments and releases the App
// however the command ends.
func Execute(ctx context.Context, load Loader) (err error) {
	root, r := newRootCommand(load)
	defer func() {
		if closeErr := r.close(); err == nil {
			err = closeErr
		}
	}()

	return root.ExecuteContext(ctx)
}

// newRootCommand assembles the command tree. The App is loaded after flag
// parsing, so --help never touches config or the session store.
func newRootCommand(load Loader) (*cobra.Command, *runner) {
	r := &runner{load: load, now: time.Now}

	root := &cobra.Command{
		Use:   "fieldctl",
		Short: "Field service order client",
		Long: `fieldctl drives the field-service order server from a terminal.
Technicians scan an order's QR code, validate their access and close the order
with evidence. Admins manage users and orders, read statistics and download reports.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app, err := r.load(cmd.Context())
			if err != nil {
				return err
			}
			r.app = app

			return nil
		},
	}

	root.AddCommand(
		r.loginCommand(),
		r.logoutCommand(),
		r.whoamiCommand(),
		r.refreshCommand(),
		r.scanCommand(),
		r.openCommand(),
		r.closeCommand(),
		r.ordersCommand(),
		r.orderCommand(),
		r.qrCommand(),
		r.statsCommand(),
		r.pdfCommand(),
		r.auditsCommand(),
		r.usersCommand(),
	)

	return root, r
}

func (r *runner) close() error {
	if r.app == nil {
		return nil
	}
	err := r.app.Close()
	r.app = nil

	return err
}

// requireSession guards commands that need a live login session.
func (r *runner) requireSession(cmd *cobra.Command, _ []string) error {
	_, err := r.session(cmd)

	return err
}

// requireRole guards commands restricted to role.
func (r *runner) requireRole(role entity.Role) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		sess, err := r.session(cmd)
		if err != nil {
			return err
		}
		if !sess.HasRole(role) {
			return domainerrors.ErrForbidden.WithDetails("this command requires the " + role.String() + " role")
		}

		return nil
	}
}

func (r *runner) session(cmd *cobra.Command) (*entity.Session, error) {
	sess, err := r.app.Auth.Current(cmd.Context())
	if err != nil {
		return nil, err
	}
	if sess.IsExpired(r.now()) {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("session expired, run fieldctl login or fieldctl refresh")
	}

	return sess, nil
}

// ErrorMessage formats err for the terminal, with the details of an AppError.
func ErrorMessage(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		msg := appErr.Message()
		if details := appErr.Details(); details != "" {
			msg += ": " + details
		}

		return msg
	}

	return err.Error()
}
