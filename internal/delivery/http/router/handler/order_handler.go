package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"fieldservice/internal/delivery/http/response"
	"fieldservice/internal/domain/entity"
	"fieldservice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderOrderToken optionally carries the order token for the QR endpoint.
const HeaderOrderToken = "X-Order-Token"

// HeaderArchiveKey reports where a downloaded report was archived.
const HeaderArchiveKey = "X-Archive-Key"

// OrderHandler serves order listings, QR codes and the admin order views.
type OrderHandler struct {
	orders  usecase.OrderUsecase
	reports usecase.ReportUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orders usecase.OrderUsecase, reports usecase.ReportUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, reports: reports, logger: logger}
}

type createOrderRequest struct {
	TechnicianID   int64  `json:"technician_id"`
	TechnicianName string `json:"technician_name"`
	Hours          int    `json:"hours"`
}

type statsView struct {
	TotalOrders     int            `json:"total_orders"`
	TotalEvidences  int            `json:"total_evidences"`
	ByStatus        []entity.Count `json:"by_status"`
	ByTechnician    []entity.Count `json:"by_technician"`
	StatusTotal     int            `json:"status_total"`
	TechnicianTotal int            `json:"technician_total"`
}

// List returns the session's orders, filtered by ?status= and ?id=.
func (h *OrderHandler) List(c echo.Context) error {
	filter := entity.OrderFilter{
		Status: entity.OrderStatus(c.QueryParam("status")),
		ID:     c.QueryParam("id"),
	}

	orders, err := h.orders.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// QR renders the order's open link as a PNG.
func (h *OrderHandler) QR(c echo.Context) error {
	qr, err := h.orders.OpenLinkQR(c.Request().Context(), c.Param("id"), c.Request().Header.Get(HeaderOrderToken))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, qr.PNG)
}

func (h *OrderHandler) Create(c echo.Context) error {
	var input createOrderRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.orders.CreateOrder(c.Request().Context(), entity.NewOrder{
		TechnicianID:   input.TechnicianID,
		TechnicianName: input.TechnicianName,
		Hours:          input.Hours,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created")
}

func (h *OrderHandler) Stats(c echo.Context) error {
	stats, err := h.orders.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statsView{
		TotalOrders:     stats.TotalOrders,
		TotalEvidences:  stats.TotalEvidences,
		ByStatus:        stats.StatusBreakdown(),
		ByTechnician:    stats.TechnicianBreakdown(),
		StatusTotal:     stats.StatusTotal(),
		TechnicianTotal: stats.TechnicianTotal(),
	}, "")
}

func (h *OrderHandler) Audits(c echo.Context) error {
	entries, err := h.orders.Audits(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// PDF streams the order report; ?archive=true also stores a copy.
func (h *OrderHandler) PDF(c echo.Context) error {
	return h.download(c, false)
}

// FullPDF streams the report including evidences.
func (h *OrderHandler) FullPDF(c echo.Context) error {
	return h.download(c, true)
}

func (h *OrderHandler) download(c echo.Context, full bool) error {
	archive, _ := strconv.ParseBool(c.QueryParam("archive"))

	report, err := h.reports.Download(c.Request().Context(), c.Param("id"), full, archive)
	if err != nil {
		return errors.WithStack(err)
	}

	if report.ArchiveKey != "" {
		c.Response().Header().Set(HeaderArchiveKey, report.ArchiveKey)
	}

	return response.Attachment(c, report.Document)
}
