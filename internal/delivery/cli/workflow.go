package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const startNotifyTimeout = 5 * time.Second

func (r *runner) openCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "open ID",
		Short: "Validate access to an order and show it",
		Long: `Open the order with its order token, as scanned from the QR code, and
show the order once the server accepts the token.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			view, err := r.openView(ctx, args[0], token)
			if err != nil {
				return err
			}
			defer r.closeView(ctx, view.ID)

			r.printAccess(cmd.OutOrStdout(), view.Access)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "jwt", "", "order token from the QR code")

	return cmd
}

func (r *runner) closeCommand() *cobra.Command {
	var (
		token   string
		answers ClosureAnswers
	)

	cmd := &cobra.Command{
		Use:   "close ID",
		Short: "Close an order with evidence",
		Long: `Close an order as failed or succeeded. Without --outcome the evidence is
collected interactively.

  failed:    --justification, --photo and optional --notes
  succeeded: --titular, --signed-doc, --id-doc and optional --notes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			view, err := r.openView(ctx, args[0], token)
			if err != nil {
				return err
			}
			defer r.closeView(ctx, view.ID)

			if answers.Outcome == "" {
				if err := r.app.Prompter.Closure(&answers, view.Wizard.Justifications); err != nil {
					return err
				}
			}

			outcome := entity.ClosureOutcome(answers.Outcome)
			if !outcome.IsValid() {
				return domainerrors.ErrValidationFailed.WithDetails("outcome must be failed or succeeded")
			}

			input, err := closureInput(answers)
			if err != nil {
				return err
			}

			if _, err := r.app.Workflow.Choose(ctx, view.ID, outcome); err != nil {
				return err
			}
			view, err = r.app.Workflow.Submit(ctx, view.ID, input)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), view.Wizard.Message)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&token, "jwt", "", "order token from the QR code")
	flags.StringVar(&answers.Outcome, "outcome", "", "failed or succeeded")
	flags.StringVar(&answers.Justification, "justification", "", "failure justification")
	flags.StringVar(&answers.Photo, "photo", "", "photo of the address (failed)")
	flags.BoolVar(&answers.TitularPresent, "titular", true, "the account holder was present (succeeded)")
	flags.StringVar(&answers.SignedDoc, "signed-doc", "", "signed document (succeeded)")
	flags.StringVar(&answers.IDDoc, "id-doc", "", "identity document (succeeded)")
	flags.StringVar(&answers.Notes, "notes", "", "closing notes")

	return cmd
}

// openView opens a view and validates the token. Anything short of READY is
// returned as an error with the view already closed.
func (r *runner) openView(ctx context.Context, orderID, token string) (*entity.OrderView, error) {
	view, err := r.app.Workflow.OpenView(ctx, orderID)
	if err != nil {
		return nil, err
	}

	validated, err := r.app.Workflow.ValidateAccess(ctx, view.ID, token)
	if err != nil {
		r.closeView(ctx, view.ID)

		return nil, err
	}

	switch validated.Access.Phase {
	case entity.AccessReady:
		return validated, nil
	case entity.AccessMissingCredentials:
		r.closeView(ctx, view.ID)

		return nil, domainerrors.ErrMissingCredentials.WithDetails("pass the order token with --jwt")
	default:
		r.closeView(ctx, view.ID)

		msg := validated.Access.Error
		if msg == "" {
			msg = "order access was rejected"
		}

		return nil, errors.New(msg)
	}
}

// closeView gives the start notification a moment to reach the server before
// tearing the view down, since the command is about to exit.
func (r *runner) closeView(ctx context.Context, viewID string) {
	waitCtx, cancel := context.WithTimeout(ctx, startNotifyTimeout)
	defer cancel()
	if err := r.app.Workflow.AwaitStart(waitCtx, viewID); err != nil {
		r.app.Logger.Warn("Order start notification did not finish", slog.String("view_id", viewID), slog.Any("error", err))
	}

	if err := r.app.Workflow.CloseView(ctx, viewID); err != nil {
		r.app.Logger.Debug("Failed to close order view", slog.String("view_id", viewID), slog.Any("error", err))
	}
}

func (r *runner) printAccess(out io.Writer, access entity.AccessState) {
	fmt.Fprintf(out, "Access:  %s\n", access.Phase)
	if order := access.Order; order != nil {
		fmt.Fprintf(out, "Order:   %d\n", order.ID)
		fmt.Fprintf(out, "Status:  %s\n", order.Status)
		if order.TechnicianName != "" {
			fmt.Fprintf(out, "Assigned: %s\n", order.TechnicianName)
		}
	}
	if claims := access.Claims; claims != nil {
		fmt.Fprintf(out, "Token:   %s\n", util.FormatExpiry(claims.ExpiresAt, r.now()))
	}
}

func closureInput(answers ClosureAnswers) (entity.ClosureInput, error) {
	notes := answers.Notes
	input := entity.ClosureInput{
		Justification: answers.Justification,
		Notes:         &notes,
	}

	var err error
	switch entity.ClosureOutcome(answers.Outcome) {
	case entity.OutcomeFailed:
		if input.Photo, err = readUpload(answers.Photo); err != nil {
			return input, err
		}
	case entity.OutcomeSucceeded:
		titular := answers.TitularPresent
		input.TitularPresent = &titular
		if input.SignedDoc, err = readUpload(answers.SignedDoc); err != nil {
			return input, err
		}
		if input.IDDoc, err = readUpload(answers.IDDoc); err != nil {
			return input, err
		}
	}

	return input, nil
}

// readUpload loads the file at path; an empty path yields nil so the wizard
// reports the missing input.
func readUpload(path string) (*entity.Upload, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &entity.Upload{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}
