package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	mockservice "fieldservice/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testJustifications = entity.Justifications{"absence_of_resident", "relative_absent", "minor_present"}

type wizardFixtures struct {
	wizard  *closureWizard
	gateway *mockservice.MockOrderGateway
}

func createTestWizard(t *testing.T, orderID string) wizardFixtures {
	gateway := mockservice.NewMockOrderGateway(t)

	w, ok := NewClosureWizard(ClosureWizardParams{
		OrderID:        orderID,
		Justifications: testJustifications,
		Gateway:        gateway,
		Logger:         discardLogger(),
	}).(*closureWizard)
	require.True(t, ok)
	t.Cleanup(w.Close)

	return wizardFixtures{wizard: w, gateway: gateway}
}

func photo() *entity.Upload {
	return &entity.Upload{Filename: "house.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}
}

func pdf(name string) *entity.Upload {
	return &entity.Upload{Filename: name, ContentType: "application/pdf", Data: []byte("%PDF-1.4")}
}

func notes(s string) *string {
	return &s
}

func TestClosureWizard_InitialView(t *testing.T) {
	fx := createTestWizard(t, "42")

	view := fx.wizard.View()
	assert.Equal(t, entity.WizardChoosing, view.State)
	assert.Equal(t, "42", view.OrderID)
	assert.Equal(t, "absence_of_resident", view.Justification)
	assert.True(t, view.TitularPresent)
	assert.False(t, view.Pending)
	assert.False(t, view.HasToken)
}

func TestClosureWizard_MissingOrderID(t *testing.T) {
	fx := createTestWizard(t, "  ")

	assert.Equal(t, entity.WizardMissingParameter, fx.wizard.View().State)
	assert.ErrorIs(t, fx.wizard.Open(context.Background()), domainerrors.ErrMissingParameter)
	assert.ErrorIs(t, fx.wizard.Choose(entity.OutcomeFailed), domainerrors.ErrMissingParameter)

	_, err := fx.wizard.Submit(context.Background(), entity.ClosureInput{Token: "abc"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingParameter)
}

func TestClosureWizard_OpenStartsOnce(t *testing.T) {
	fx := createTestWizard(t, "42")

	started := make(chan struct{})
	fx.gateway.EXPECT().StartOrder(mock.Anything, "42").
		RunAndReturn(func(context.Context, string) error {
			close(started)

			return domainerrors.NewUpstreamError(http.StatusBadRequest, "Order already started", errors.New("bad request"))
		}).Once()

	require.NoError(t, fx.wizard.Open(context.Background()))
	require.NoError(t, fx.wizard.Open(context.Background()))

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("start notification was not sent")
	}

	// a failed start notification does not block the wizard
	assert.NoError(t, fx.wizard.Choose(entity.OutcomeFailed))
}

func TestClosureWizard_Transitions(t *testing.T) {
	fx := createTestWizard(t, "42")
	w := fx.wizard

	assert.ErrorIs(t, w.Back(), domainerrors.ErrInvalidTransition)
	assert.ErrorIs(t, w.Choose("maybe"), domainerrors.ErrValidationFailed)

	require.NoError(t, w.Choose(entity.OutcomeFailed))
	assert.Equal(t, entity.WizardFailing, w.View().State)
	assert.ErrorIs(t, w.Choose(entity.OutcomeSucceeded), domainerrors.ErrInvalidTransition)

	require.NoError(t, w.Back())
	require.NoError(t, w.Choose(entity.OutcomeSucceeded))
	assert.Equal(t, entity.WizardSucceeding, w.View().State)
}

func TestClosureWizard_SubmitBeforeChoosing(t *testing.T) {
	fx := createTestWizard(t, "42")

	_, err := fx.wizard.Submit(context.Background(), entity.ClosureInput{Token: "abc", Photo: photo()})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestClosureWizard_MissingInputSendsNothing(t *testing.T) {
	tests := []struct {
		name    string
		outcome entity.ClosureOutcome
		input   entity.ClosureInput
		missing []string
	}{
		{
			name:    "failure without photo",
			outcome: entity.OutcomeFailed,
			input:   entity.ClosureInput{Token: "abc"},
			missing: []string{"photo_address"},
		},
		{
			name:    "failure without token",
			outcome: entity.OutcomeFailed,
			input:   entity.ClosureInput{Photo: photo()},
			missing: []string{"jwt"},
		},
		{
			name:    "success without documents",
			outcome: entity.OutcomeSucceeded,
			input:   entity.ClosureInput{Token: "abc"},
			missing: []string{"doc_signed", "doc_id"},
		},
		{
			name:    "success with an empty file",
			outcome: entity.OutcomeSucceeded,
			input:   entity.ClosureInput{Token: "abc", SignedDoc: pdf("signed.pdf"), IDDoc: &entity.Upload{Filename: "id.pdf"}},
			missing: []string{"doc_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the strict mock fails the test on any gateway call
			fx := createTestWizard(t, "42")
			require.NoError(t, fx.wizard.Choose(tt.outcome))

			_, err := fx.wizard.Submit(context.Background(), tt.input)

			require.ErrorIs(t, err, domainerrors.ErrMissingInput)

			var appErr *domainerrors.BaseError
			require.ErrorAs(t, err, &appErr)
			view := fx.wizard.View()
			for _, field := range tt.missing {
				assert.Contains(t, appErr.Details(), field)
				assert.Contains(t, view.Error, field)
			}
			assert.False(t, view.Pending)
		})
	}
}

func TestClosureWizard_UnknownJustification(t *testing.T) {
	fx := createTestWizard(t, "42")
	require.NoError(t, fx.wizard.Choose(entity.OutcomeFailed))

	_, err := fx.wizard.Submit(context.Background(), entity.ClosureInput{
		Token:         "abc",
		Justification: "bad_weather",
		Photo:         photo(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestClosureWizard_SubmitFailureResetsOnSuccess(t *testing.T) {
	fx := createTestWizard(t, "42")
	w := fx.wizard
	require.NoError(t, w.Choose(entity.OutcomeFailed))

	fx.gateway.EXPECT().CloseOrder(mock.Anything, mock.MatchedBy(func(s *entity.ClosureSubmission) bool {
		fields := s.Fields()
		files := s.Files()

		return s.OrderID == "42" &&
			s.Outcome == entity.OutcomeFailed &&
			fields["jwt"] == "abc" &&
			fields["justification"] == "minor_present" &&
			fields["notes"] == "" &&
			files["photo_address"].Filename == "house.jpg"
	})).Return("Order closed as failed", nil).Once()

	detail, err := w.Submit(context.Background(), entity.ClosureInput{
		Token:         "abc",
		Justification: "minor_present",
		Photo:         photo(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Order closed as failed", detail)

	view := w.View()
	assert.Equal(t, entity.WizardChoosing, view.State)
	assert.Equal(t, "Order closed as failed", view.Message)
	assert.Equal(t, "absence_of_resident", view.Justification)
	assert.True(t, view.TitularPresent)
	assert.Empty(t, view.Notes)
	assert.False(t, view.HasToken)
	assert.Nil(t, view.Photo)
}

func TestClosureWizard_SubmitSuccessForm(t *testing.T) {
	fx := createTestWizard(t, "42")
	w := fx.wizard
	require.NoError(t, w.Choose(entity.OutcomeSucceeded))

	absent := false
	fx.gateway.EXPECT().CloseOrder(mock.Anything, mock.MatchedBy(func(s *entity.ClosureSubmission) bool {
		fields := s.Fields()
		files := s.Files()

		return s.Outcome == entity.OutcomeSucceeded &&
			fields["titular_present"] == "false" &&
			fields["notes"] == "left with neighbour" &&
			files["doc_signed"].Filename == "signed.pdf" &&
			files["doc_id"].Filename == "id.pdf"
	})).Return("", nil).Once()

	detail, err := w.Submit(context.Background(), entity.ClosureInput{
		Token:          "abc",
		TitularPresent: &absent,
		Notes:          notes("left with neighbour"),
		SignedDoc:      pdf("signed.pdf"),
		IDDoc:          pdf("id.pdf"),
	})
	require.NoError(t, err)
	assert.Equal(t, closedAsSucceededMessage, detail)
	assert.True(t, w.View().TitularPresent)
}

func TestClosureWizard_RejectedSubmitKeepsDraft(t *testing.T) {
	fx := createTestWizard(t, "42")
	w := fx.wizard
	require.NoError(t, w.Choose(entity.OutcomeFailed))

	fx.gateway.EXPECT().CloseOrder(mock.Anything, mock.Anything).
		Return("", domainerrors.NewUpstreamError(http.StatusBadRequest, "Order already closed", errors.New("bad request"))).Once()

	_, err := w.Submit(context.Background(), entity.ClosureInput{Token: "abc", Notes: notes("dog in yard"), Photo: photo()})
	require.Error(t, err)

	view := w.View()
	assert.Equal(t, entity.WizardFailing, view.State)
	assert.Equal(t, "Order already closed", view.Error)
	assert.Equal(t, "dog in yard", view.Notes)
	assert.True(t, view.HasToken)
	require.NotNil(t, view.Photo)
	assert.Equal(t, "house.jpg", view.Photo.Filename)

	// retrying with no new input resends the held draft
	fx.gateway.EXPECT().CloseOrder(mock.Anything, mock.MatchedBy(func(s *entity.ClosureSubmission) bool {
		return s.Fields()["notes"] == "dog in yard" && s.Files()["photo_address"] != nil
	})).Return("closed", nil).Once()

	detail, err := w.Submit(context.Background(), entity.ClosureInput{})
	require.NoError(t, err)
	assert.Equal(t, "closed", detail)
	assert.Empty(t, w.View().Error)
}

func TestClosureWizard_RetryCanClearNotes(t *testing.T) {
	fx := createTestWizard(t, "42")
	w := fx.wizard
	require.NoError(t, w.Choose(entity.OutcomeFailed))

	fx.gateway.EXPECT().CloseOrder(mock.Anything, mock.Anything).
		Return("", domainerrors.NewUpstreamError(http.StatusBadRequest, "Order already closed", errors.New("bad request"))).Once()

	_, err := w.Submit(context.Background(), entity.ClosureInput{Token: "abc", Notes: notes("typo"), Photo: photo()})
	require.Error(t, err)
	assert.Equal(t, "typo", w.View().Notes)

	fx.gateway.EXPECT().CloseOrder(mock.Anything, mock.MatchedBy(func(s *entity.ClosureSubmission) bool {
		return s.Fields()["notes"] == "" && s.Files()["photo_address"] != nil
	})).Return("closed", nil).Once()

	_, err = w.Submit(context.Background(), entity.ClosureInput{Notes: notes("")})
	require.NoError(t, err)
}

func TestClosureWizard_AwaitStart(t *testing.T) {
	fx := createTestWizard(t, "42")

	// nothing to wait for before Open
	require.NoError(t, fx.wizard.AwaitStart(context.Background()))

	release := make(chan struct{})
	fx.gateway.EXPECT().StartOrder(mock.Anything, "42").
		RunAndReturn(func(context.Context, string) error {
			<-release

			return nil
		}).Once()
	require.NoError(t, fx.wizard.Open(context.Background()))

	short, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, fx.wizard.AwaitStart(short), context.DeadlineExceeded)

	close(release)
	assert.NoError(t, fx.wizard.AwaitStart(context.Background()))
}

func TestClosureWizard_CloseAbandonsStart(t *testing.T) {
	fx := createTestWizard(t, "42")

	fx.gateway.EXPECT().StartOrder(mock.Anything, "42").
		RunAndReturn(func(ctx context.Context, _ string) error {
			<-ctx.Done()

			return ctx.Err()
		}).Once()
	require.NoError(t, fx.wizard.Open(context.Background()))

	fx.wizard.Close()
	assert.NoError(t, fx.wizard.AwaitStart(context.Background()))
}

func TestClosureWizard_PendingGate(t *testing.T) {
	fx := createTestWizard(t, "42")
	w := fx.wizard
	require.NoError(t, w.Choose(entity.OutcomeFailed))

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.gateway.EXPECT().CloseOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.ClosureSubmission) (string, error) {
			close(entered)
			<-release

			return "done", nil
		}).Once()

	input := entity.ClosureInput{Token: "abc", Photo: photo()}
	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background(), input)
		done <- err
	}()
	<-entered

	view := w.View()
	assert.True(t, view.Pending)
	assert.Equal(t, entity.WizardSubmitting, view.State)

	_, err := w.Submit(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrSubmissionInProgress)
	assert.ErrorIs(t, w.Back(), domainerrors.ErrSubmissionInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, w.View().Pending)
}

func TestClosureWizard_CloseDiscardsResult(t *testing.T) {
	fx := createTestWizard(t, "42")
	w := fx.wizard
	require.NoError(t, w.Choose(entity.OutcomeFailed))

	entered := make(chan struct{})
	fx.gateway.EXPECT().CloseOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *entity.ClosureSubmission) (string, error) {
			close(entered)
			<-ctx.Done()

			return "", ctx.Err()
		}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background(), entity.ClosureInput{Token: "abc", Photo: photo()})
		done <- err
	}()
	<-entered
	w.Close()

	assert.ErrorIs(t, <-done, domainerrors.ErrViewClosed)
}
