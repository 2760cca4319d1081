package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/service"
	"fieldservice/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	// GenericClosureMessage is shown when a closure fails without a server detail.
	GenericClosureMessage = "The order could not be closed"

	closedAsFailedMessage    = "Order closed as failed"
	closedAsSucceededMessage = "Order closed as succeeded"
)

// formFieldNames maps form struct fields to the names the server knows them by.
var formFieldNames = map[string]string{
	"Token":         "jwt",
	"Justification": "justification",
	"Photo":         "photo_address",
	"SignedDoc":     "doc_signed",
	"IDDoc":         "doc_id",
}

type closureDraft struct {
	token          string
	justification  string
	titularPresent bool
	notes          string
	photo          *entity.Upload
	signedDoc      *entity.Upload
	idDoc          *entity.Upload
}

// closureWizard implements the ClosureWizard interface for one order.
type closureWizard struct {
	orderID        string
	justifications entity.Justifications
	gateway        service.OrderGateway
	validate       *validator.Validate
	logger         *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// started is closed once the start notification has finished.
	started chan struct{}

	mu      sync.Mutex
	state   entity.WizardState
	draft   closureDraft
	pending bool
	opened  bool
	closed  bool
	message string
	lastErr string
}

// ClosureWizardParams holds the dependencies of a closure wizard.
type ClosureWizardParams struct {
	OrderID        string
	Justifications entity.Justifications
	Gateway        service.OrderGateway
	Validate       *validator.Validate
	Logger         *slog.Logger
}

// NewClosureWizard is the constructor for closureWizard.
func NewClosureWizard(params ClosureWizardParams) usecase.ClosureWizard {
	ctx, cancel := context.WithCancel(context.Background())

	validate := params.Validate
	if validate == nil {
		validate = validator.New()
	}

	w := &closureWizard{
		orderID:        strings.TrimSpace(params.OrderID),
		justifications: params.Justifications,
		gateway:        params.Gateway,
		validate:       validate,
		logger:         params.Logger,
		ctx:            ctx,
		cancel:         cancel,
		started:        make(chan struct{}),
		state:          entity.WizardChoosing,
	}
	w.draft = w.defaults()
	if w.orderID == "" {
		w.state = entity.WizardMissingParameter
	}

	return w
}

func (w *closureWizard) defaults() closureDraft {
	return closureDraft{
		justification:  w.justifications.Default(),
		titularPresent: true,
	}
}

// Open sends the start notification once. Its failure is only logged.
func (w *closureWizard) Open(ctx context.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, w.logger)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return domainerrors.ErrViewClosed
	}
	if w.state == entity.WizardMissingParameter {
		return domainerrors.ErrMissingParameter
	}
	if w.opened {
		return nil
	}
	w.opened = true

	// The notification outlives the opening request but keeps its values,
	// so it goes out with the caller's bearer. Close still cancels it.
	startCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(w.ctx, cancel)

	orderID := w.orderID
	go func() {
		defer close(w.started)
		defer cancel()
		defer stop()

		if err := w.gateway.StartOrder(startCtx, orderID); err != nil {
			logger.Warn("Failed to notify order start", slog.String("order_id", orderID), slog.Any("error", err))

			return
		}
		logger.Debug("Order start notified", slog.String("order_id", orderID))
	}()

	return nil
}

// AwaitStart blocks until the start notification sent by Open has finished.
// It returns at once when Open never sent one.
func (w *closureWizard) AwaitStart(ctx context.Context) error {
	w.mu.Lock()
	opened := w.opened
	w.mu.Unlock()

	if !opened {
		return nil
	}

	select {
	case <-w.started:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

func (w *closureWizard) Choose(outcome entity.ClosureOutcome) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.usableLocked(); err != nil {
		return err
	}
	if w.state != entity.WizardChoosing {
		return domainerrors.ErrInvalidTransition.WithDetails("choose is only allowed in " + string(entity.WizardChoosing))
	}

	switch outcome {
	case entity.OutcomeFailed:
		w.state = entity.WizardFailing
	case entity.OutcomeSucceeded:
		w.state = entity.WizardSucceeding
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown outcome " + string(outcome))
	}
	w.message = ""
	w.lastErr = ""

	return nil
}

func (w *closureWizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.usableLocked(); err != nil {
		return err
	}
	if !w.state.IsForm() {
		return domainerrors.ErrInvalidTransition.WithDetails("back is only allowed from a form")
	}
	w.state = entity.WizardChoosing
	w.lastErr = ""

	return nil
}

// Submit validates locally first; nothing is sent when a required field is missing.
func (w *closureWizard) Submit(ctx context.Context, input entity.ClosureInput) (string, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, w.logger)

	w.mu.Lock()
	if err := w.usableLocked(); err != nil {
		w.mu.Unlock()

		return "", err
	}
	if !w.state.IsForm() {
		w.mu.Unlock()

		return "", domainerrors.ErrInvalidTransition.WithDetails("choose an outcome before submitting")
	}

	w.mergeLocked(input)
	submission := w.submissionLocked()
	if err := w.check(submission); err != nil {
		w.lastErr = describe(err)
		w.mu.Unlock()

		return "", err
	}

	formState := w.state
	w.state = entity.WizardSubmitting
	w.pending = true
	w.lastErr = ""
	w.message = ""
	w.mu.Unlock()

	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(w.ctx, cancel)
	detail, err := w.gateway.CloseOrder(reqCtx, submission)
	stop()
	cancel()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = false
	if w.closed {
		logger.Debug("Discarding closure result after teardown", slog.String("order_id", w.orderID))

		return "", domainerrors.ErrViewClosed
	}

	if err != nil {
		w.state = formState
		w.lastErr = domainerrors.ServerMessage(err, GenericClosureMessage)
		logger.Warn("Order closure rejected",
			slog.String("order_id", w.orderID),
			slog.String("outcome", string(submission.Outcome)),
			slog.Any("error", err),
		)

		return "", errors.Wrap(err, "close order")
	}

	if detail == "" {
		detail = closedAsSucceededMessage
		if submission.Outcome == entity.OutcomeFailed {
			detail = closedAsFailedMessage
		}
	}
	w.draft = w.defaults()
	w.state = entity.WizardChoosing
	w.message = detail
	logger.Info("Order closed", slog.String("order_id", w.orderID), slog.String("outcome", string(submission.Outcome)))

	return detail, nil
}

func (w *closureWizard) View() entity.WizardView {
	w.mu.Lock()
	defer w.mu.Unlock()

	return entity.WizardView{
		State:          w.state,
		OrderID:        w.orderID,
		Pending:        w.pending,
		Justifications: w.justifications,
		Justification:  w.draft.justification,
		TitularPresent: w.draft.titularPresent,
		Notes:          w.draft.notes,
		HasToken:       w.draft.token != "",
		Photo:          w.draft.photo.Info(),
		SignedDoc:      w.draft.signedDoc.Info(),
		IDDoc:          w.draft.idDoc.Info(),
		Message:        w.message,
		Error:          w.lastErr,
	}
}

func (w *closureWizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	w.cancel()
}

func (w *closureWizard) usableLocked() error {
	if w.closed {
		return domainerrors.ErrViewClosed
	}
	if w.state == entity.WizardMissingParameter {
		return domainerrors.ErrMissingParameter
	}
	if w.pending {
		return domainerrors.ErrSubmissionInProgress
	}

	return nil
}

func (w *closureWizard) mergeLocked(input entity.ClosureInput) {
	if token := strings.TrimSpace(input.Token); token != "" {
		w.draft.token = token
	}
	if input.Justification != "" {
		w.draft.justification = input.Justification
	}
	if input.TitularPresent != nil {
		w.draft.titularPresent = *input.TitularPresent
	}
	if input.Notes != nil {
		w.draft.notes = *input.Notes
	}
	if !input.Photo.IsEmpty() {
		w.draft.photo = input.Photo
	}
	if !input.SignedDoc.IsEmpty() {
		w.draft.signedDoc = input.SignedDoc
	}
	if !input.IDDoc.IsEmpty() {
		w.draft.idDoc = input.IDDoc
	}
}

func (w *closureWizard) submissionLocked() *entity.ClosureSubmission {
	if w.state == entity.WizardFailing {
		return &entity.ClosureSubmission{
			OrderID: w.orderID,
			Outcome: entity.OutcomeFailed,
			Failure: &entity.FailureForm{
				Token:         w.draft.token,
				Justification: w.draft.justification,
				Photo:         nonEmpty(w.draft.photo),
				Notes:         w.draft.notes,
			},
		}
	}

	return &entity.ClosureSubmission{
		OrderID: w.orderID,
		Outcome: entity.OutcomeSucceeded,
		Success: &entity.SuccessForm{
			Token:          w.draft.token,
			TitularPresent: w.draft.titularPresent,
			SignedDoc:      nonEmpty(w.draft.signedDoc),
			IDDoc:          nonEmpty(w.draft.idDoc),
			Notes:          w.draft.notes,
		},
	}
}

// check returns ErrMissingInput listing every missing field by its server name.
func (w *closureWizard) check(submission *entity.ClosureSubmission) error {
	var form any = submission.Success
	if submission.Outcome == entity.OutcomeFailed {
		form = submission.Failure
	}

	var missing []string
	if err := w.validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.Wrap(err, "validate closure form")
		}
		for _, fe := range fieldErrs {
			name, ok := formFieldNames[fe.StructField()]
			if !ok {
				name = fe.Field()
			}
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return domainerrors.ErrMissingInput.WithDetails(strings.Join(missing, ", "))
	}

	if submission.Failure != nil && len(w.justifications) > 0 && !w.justifications.Contains(submission.Failure.Justification) {
		return domainerrors.ErrValidationFailed.WithDetails("unknown justification " + submission.Failure.Justification)
	}

	return nil
}

// describe renders a local validation error with its details.
func describe(err error) string {
	var appErr *domainerrors.BaseError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		return appErr.Message() + ": " + appErr.Details()
	}

	return err.Error()
}

func nonEmpty(u *entity.Upload) *entity.Upload {
	if u.IsEmpty() {
		return nil
	}

	return u
}
