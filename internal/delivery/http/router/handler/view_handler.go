package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/delivery/http/response"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ViewHandler drives order views: access validation and the closure wizard.
type ViewHandler struct {
	uc     usecase.WorkflowUsecase
	logger *slog.Logger
}

// NewViewHandler is the constructor for ViewHandler, injected by Fx.
func NewViewHandler(uc usecase.WorkflowUsecase, logger *slog.Logger) *ViewHandler {
	return &ViewHandler{uc: uc, logger: logger}
}

type openViewRequest struct {
	OrderID string `json:"order_id" form:"order_id"`
}

type accessRequest struct {
	// the order token travels in the body, never in the URL
	Token string `json:"jwt" form:"jwt"`
}

type chooseRequest struct {
	Outcome entity.ClosureOutcome `json:"outcome" form:"outcome" validate:"required,oneof=failed succeeded"`
}

// Open registers a view for an order and notifies the server that work started.
func (h *ViewHandler) Open(c echo.Context) error {
	var input openViewRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid view input")
	}

	view, err := h.uc.OpenView(c.Request().Context(), input.OrderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Order view opened")
}

func (h *ViewHandler) Get(c echo.Context) error {
	view, err := h.uc.GetView(h.viewContext(c), c.Param("vid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Access validates the order token. Rejections are reported in the view state.
func (h *ViewHandler) Access(c echo.Context) error {
	var input accessRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid access input")
	}

	view, err := h.uc.ValidateAccess(h.viewContext(c), c.Param("vid"), input.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

func (h *ViewHandler) Choose(c echo.Context) error {
	var input chooseRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outcome input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Choose(h.viewContext(c), c.Param("vid"), input.Outcome)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

func (h *ViewHandler) Back(c echo.Context) error {
	view, err := h.uc.Back(h.viewContext(c), c.Param("vid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Submit reads the closure form as multipart and closes the order.
func (h *ViewHandler) Submit(c echo.Context) error {
	input, err := closureInput(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Submit(h.viewContext(c), c.Param("vid"), *input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, view.Wizard.Message)
}

// Close tears the view down; late results for it are discarded.
func (h *ViewHandler) Close(c echo.Context) error {
	if err := h.uc.CloseView(h.viewContext(c), c.Param("vid")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// viewContext tags the request logger with the view id.
func (h *ViewHandler) viewContext(c echo.Context) context.Context {
	return deliverycontext.WithLogAttrs(c.Request().Context(), h.logger, slog.String("view_id", c.Param("vid")))
}

func closureInput(c echo.Context) (*entity.ClosureInput, error) {
	input := &entity.ClosureInput{
		Token:         c.FormValue("jwt"),
		Justification: c.FormValue("justification"),
		Notes:         formField(c, "notes"),
	}

	if raw := c.FormValue("titular_present"); raw != "" {
		present, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("titular_present must be true or false")
		}
		input.TitularPresent = &present
	}

	var err error
	if input.Photo, err = formUpload(c, "photo_address"); err != nil {
		return nil, err
	}
	if input.SignedDoc, err = formUpload(c, "doc_signed"); err != nil {
		return nil, err
	}
	if input.IDDoc, err = formUpload(c, "doc_id"); err != nil {
		return nil, err
	}

	return input, nil
}

// formField returns the named form value, or nil when the form does not carry
// the field at all. A present but empty field yields a pointer to "".
func formField(c echo.Context, name string) *string {
	params, err := c.FormParams()
	if err != nil {
		return nil
	}
	values, ok := params[name]
	if !ok || len(values) == 0 {
		return nil
	}

	return &values[0]
}
