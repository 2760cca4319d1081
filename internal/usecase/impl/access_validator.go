package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/service"
	"fieldservice/internal/usecase"

	"github.com/pkg/errors"
)

// GenericAccessMessage is shown when the server rejects a token without a detail.
const GenericAccessMessage = "The order link is invalid or has expired"

type accessKey struct {
	orderID string
	token   string
}

// accessValidator implements the AccessValidator interface for one order view.
type accessValidator struct {
	gateway service.OrderGateway
	tokens  service.TokenInspector
	logger  *slog.Logger

	// ctx is cancelled by Close to abandon the in-flight request.
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	state   entity.AccessState
	key     *accessKey
	gen     uint64
	closed  bool
	readyTo string
}

// NewAccessValidator is the constructor for accessValidator.
func NewAccessValidator(gateway service.OrderGateway, tokens service.TokenInspector, logger *slog.Logger) usecase.AccessValidator {
	ctx, cancel := context.WithCancel(context.Background())

	return &accessValidator{
		gateway: gateway,
		tokens:  tokens,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		state:   entity.AccessState{Phase: entity.AccessIdle},
	}
}

// Validate issues at most one request per (orderID, token) pair.
func (v *accessValidator) Validate(ctx context.Context, orderID, token string) (entity.AccessState, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, v.logger)

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()

		return entity.AccessState{}, domainerrors.ErrViewClosed
	}

	key := accessKey{orderID: orderID, token: token}
	if v.key != nil && *v.key == key {
		// already validated or validating this pair
		state := v.state
		v.mu.Unlock()

		return state, nil
	}

	v.key = &key
	v.gen++
	gen := v.gen

	if orderID == "" || token == "" {
		v.state = entity.AccessState{
			Phase:   entity.AccessMissingCredentials,
			OrderID: orderID,
			Error:   domainerrors.ErrMissingCredentials.Message(),
		}
		state := v.state
		v.mu.Unlock()
		logger.Info("Order access without credentials", slog.String("order_id", orderID))

		return state, nil
	}

	v.state = entity.AccessState{Phase: entity.AccessValidating, OrderID: orderID}
	v.mu.Unlock()

	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(v.ctx, cancel)
	order, err := v.gateway.ValidateToken(reqCtx, orderID, token)
	stop()
	cancel()

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		logger.Debug("Discarding validation result after teardown", slog.String("order_id", orderID))

		return entity.AccessState{}, domainerrors.ErrViewClosed
	}
	if v.gen != gen {
		// a newer pair took over; its state is the current one
		return v.state, nil
	}

	if err != nil && ctx.Err() != nil {
		// the caller went away; the pair was never judged, so it may be tried again
		v.key = nil
		v.state = entity.AccessState{Phase: entity.AccessIdle, OrderID: orderID}
		logger.Debug("Order access check abandoned by caller", slog.String("order_id", orderID))

		return v.state, errors.WithStack(ctx.Err())
	}

	if err != nil {
		if !rejected(err) {
			// a transport failure says nothing about the token; allow a retry of the same pair
			v.key = nil
		}
		logger.Warn("Order access rejected", slog.String("order_id", orderID), slog.Any("error", err))
		v.state = entity.AccessState{
			Phase:   entity.AccessFailed,
			OrderID: orderID,
			Error:   domainerrors.ServerMessage(err, GenericAccessMessage),
		}

		return v.state, nil
	}

	state := entity.AccessState{Phase: entity.AccessReady, OrderID: orderID, Order: order}
	if claims, err := v.tokens.OrderClaims(token); err == nil {
		state.Claims = claims
	}
	v.state = state
	v.readyTo = token
	logger.Info("Order access granted", slog.String("order_id", orderID))

	return v.state, nil
}

func (v *accessValidator) State() entity.AccessState {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state
}

func (v *accessValidator) Token() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state.Phase != entity.AccessReady {
		return ""
	}

	return v.readyTo
}

func (v *accessValidator) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
	v.cancel()
}

// rejected reports whether the order server answered, as opposed to never
// being reached.
func rejected(err error) bool {
	var upstream *domainerrors.UpstreamError

	return errors.As(err, &upstream) && upstream.StatusCode() != 0
}
