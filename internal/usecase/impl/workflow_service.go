package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fieldservice/config"
	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/service"
	"fieldservice/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderView is one opened order with its own validator and wizard. owner is
// the gateway session that opened it; only that session can reach it.
type orderView struct {
	id        string
	orderID   string
	owner     string
	createdAt time.Time
	lastUsed  time.Time
	access    usecase.AccessValidator
	wizard    usecase.ClosureWizard
}

func (v *orderView) close() {
	v.access.Close()
	v.wizard.Close()
}

func (v *orderView) snapshot() *entity.OrderView {
	return &entity.OrderView{
		ID:        v.id,
		OrderID:   v.orderID,
		CreatedAt: v.createdAt,
		Access:    v.access.State(),
		Wizard:    v.wizard.View(),
	}
}

// workflowService implements the WorkflowUsecase interface.
type workflowService struct {
	gateway        service.OrderGateway
	tokens         service.TokenInspector
	justifications entity.Justifications
	validate       *validator.Validate
	logger         *slog.Logger
	now            func() time.Time

	// idleTimeout and maxViews bound the registry; zero disables each bound.
	idleTimeout time.Duration
	maxViews    int
	stopSweep   chan struct{}

	mu     sync.Mutex
	views  map[string]*orderView
	closed bool
}

// WorkflowServiceParams holds dependencies for WorkflowService, injected by Fx.
type WorkflowServiceParams struct {
	fx.In

	Gateway service.OrderGateway
	Tokens  service.TokenInspector
	Config  *config.Config
	Logger  *slog.Logger
}

// NewWorkflowService is the constructor for workflowService. With an idle
// timeout configured, views nobody touched for that long are torn down in the background.
func NewWorkflowService(params WorkflowServiceParams) usecase.WorkflowUsecase {
	var justifications entity.Justifications
	srv := &workflowService{
		gateway:   params.Gateway,
		tokens:    params.Tokens,
		validate:  validator.New(),
		logger:    params.Logger,
		now:       time.Now,
		stopSweep: make(chan struct{}),
		views:     make(map[string]*orderView),
	}
	if params.Config != nil {
		justifications = params.Config.Closure.Justifications
		srv.idleTimeout = params.Config.Closure.ViewIdleTimeout
		srv.maxViews = params.Config.Closure.MaxViews
	}
	if len(justifications) == 0 {
		justifications = config.DefaultJustifications
	}
	srv.justifications = justifications

	if srv.idleTimeout > 0 {
		go srv.sweepLoop(sweepInterval(srv.idleTimeout))
	}

	return srv
}

func (srv *workflowService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OpenView registers a new view and runs the wizard's entry action. A view
// without an order id is still registered and reports MISSING_PARAMETER.
func (srv *workflowService) OpenView(ctx context.Context, orderID string) (*entity.OrderView, error) {
	now := srv.now()
	view := &orderView{
		id:        uuid.NewString(),
		orderID:   orderID,
		owner:     deliverycontext.GetSessionID(ctx),
		createdAt: now,
		lastUsed:  now,
		access:    NewAccessValidator(srv.gateway, srv.tokens, srv.logger),
		wizard: NewClosureWizard(ClosureWizardParams{
			OrderID:        orderID,
			Justifications: srv.justifications,
			Gateway:        srv.gateway,
			Validate:       srv.validate,
			Logger:         srv.logger,
		}),
	}

	srv.mu.Lock()
	if srv.closed {
		srv.mu.Unlock()
		view.close()

		return nil, domainerrors.ErrViewClosed
	}
	evicted := srv.evictIdleLocked(now)
	if srv.maxViews > 0 && len(srv.views) >= srv.maxViews {
		evicted = append(evicted, srv.evictOldestLocked())
	}
	srv.views[view.id] = view
	srv.mu.Unlock()

	srv.teardown(evicted, "Evicted order views")

	if err := view.wizard.Open(ctx); err != nil && !errors.Is(err, domainerrors.ErrMissingParameter) {
		return nil, errors.Wrap(err, "open closure wizard")
	}
	srv.log(ctx).Info("Order view opened", slog.String("view_id", view.id), slog.String("order_id", orderID))

	return view.snapshot(), nil
}

func (srv *workflowService) GetView(ctx context.Context, viewID string) (*entity.OrderView, error) {
	view, err := srv.find(ctx, viewID)
	if err != nil {
		return nil, err
	}

	return view.snapshot(), nil
}

// ValidateAccess checks the order-scoped token of the view's order.
func (srv *workflowService) ValidateAccess(ctx context.Context, viewID, token string) (*entity.OrderView, error) {
	view, err := srv.find(ctx, viewID)
	if err != nil {
		return nil, err
	}

	if _, err := view.access.Validate(ctx, view.orderID, token); err != nil {
		return nil, errors.Wrap(err, "validate order access")
	}

	return view.snapshot(), nil
}

func (srv *workflowService) Choose(ctx context.Context, viewID string, outcome entity.ClosureOutcome) (*entity.OrderView, error) {
	view, err := srv.findReady(ctx, viewID)
	if err != nil {
		return nil, err
	}

	if err := view.wizard.Choose(outcome); err != nil {
		return nil, err
	}

	return view.snapshot(), nil
}

func (srv *workflowService) Back(ctx context.Context, viewID string) (*entity.OrderView, error) {
	view, err := srv.find(ctx, viewID)
	if err != nil {
		return nil, err
	}

	if err := view.wizard.Back(); err != nil {
		return nil, err
	}

	return view.snapshot(), nil
}

// Submit closes the order. Without a token in the input, the validated access token is used.
func (srv *workflowService) Submit(ctx context.Context, viewID string, input entity.ClosureInput) (*entity.OrderView, error) {
	view, err := srv.findReady(ctx, viewID)
	if err != nil {
		return nil, err
	}

	if input.Token == "" {
		input.Token = view.access.Token()
	}
	if _, err := view.wizard.Submit(ctx, input); err != nil {
		return nil, err
	}

	return view.snapshot(), nil
}

// AwaitStart waits until the view's start notification has been sent.
func (srv *workflowService) AwaitStart(ctx context.Context, viewID string) error {
	view, err := srv.find(ctx, viewID)
	if err != nil {
		return err
	}

	return view.wizard.AwaitStart(ctx)
}

func (srv *workflowService) CloseView(ctx context.Context, viewID string) error {
	owner := deliverycontext.GetSessionID(ctx)

	srv.mu.Lock()
	view, ok := srv.views[viewID]
	if ok && view.owner == owner {
		delete(srv.views, viewID)
	}
	srv.mu.Unlock()

	if !ok || view.owner != owner {
		return domainerrors.ErrViewNotFound
	}
	view.close()
	srv.log(ctx).Info("Order view closed", slog.String("view_id", viewID))

	return nil
}

func (srv *workflowService) Close() {
	srv.mu.Lock()
	if srv.closed {
		srv.mu.Unlock()

		return
	}
	views := srv.views
	srv.views = make(map[string]*orderView)
	srv.closed = true
	close(srv.stopSweep)
	srv.mu.Unlock()

	for _, view := range views {
		view.close()
	}
	if len(views) > 0 {
		srv.logger.Info("Closed open order views", slog.Int("count", len(views)))
	}
}

// find returns the view when it belongs to the caller's session and marks it used.
func (srv *workflowService) find(ctx context.Context, viewID string) (*orderView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	view, ok := srv.views[viewID]
	if !ok || view.owner != deliverycontext.GetSessionID(ctx) {
		return nil, domainerrors.ErrViewNotFound
	}
	view.lastUsed = srv.now()

	return view, nil
}

// findReady returns the view only once its order access has been validated.
func (srv *workflowService) findReady(ctx context.Context, viewID string) (*orderView, error) {
	view, err := srv.find(ctx, viewID)
	if err != nil {
		return nil, err
	}
	if view.access.State().Phase != entity.AccessReady {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("order access has not been validated")
	}

	return view, nil
}

func (srv *workflowService) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-srv.stopSweep:
			return
		case <-ticker.C:
			srv.sweep()
		}
	}
}

// sweep tears down every view idle for longer than the idle timeout.
func (srv *workflowService) sweep() {
	srv.mu.Lock()
	evicted := srv.evictIdleLocked(srv.now())
	srv.mu.Unlock()

	srv.teardown(evicted, "Closed idle order views")
}

func (srv *workflowService) evictIdleLocked(now time.Time) []*orderView {
	if srv.idleTimeout <= 0 {
		return nil
	}

	var evicted []*orderView
	for id, view := range srv.views {
		if now.Sub(view.lastUsed) >= srv.idleTimeout {
			delete(srv.views, id)
			evicted = append(evicted, view)
		}
	}

	return evicted
}

// evictOldestLocked removes the least recently used view. The registry must not be empty.
func (srv *workflowService) evictOldestLocked() *orderView {
	var oldest *orderView
	for _, view := range srv.views {
		if oldest == nil || view.lastUsed.Before(oldest.lastUsed) {
			oldest = view
		}
	}
	delete(srv.views, oldest.id)

	return oldest
}

func (srv *workflowService) teardown(views []*orderView, msg string) {
	if len(views) == 0 {
		return
	}
	for _, view := range views {
		view.close()
	}
	srv.logger.Info(msg, slog.Int("count", len(views)))
}

func sweepInterval(idleTimeout time.Duration) time.Duration {
	interval := idleTimeout / 2
	if interval < time.Second {
		interval = time.Second
	}
	if interval > time.Minute {
		interval = time.Minute
	}

	return interval
}
