package handler

import (
	"image"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/delivery/http/response"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/infra/camera"
	"fieldservice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// frameField is the multipart field carrying camera frames.
const frameField = "frame"

// ScanHandler turns scanned QR codes into navigation targets.
type ScanHandler struct {
	uc     usecase.QRCaptureUsecase
	logger *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler, injected by Fx.
func NewScanHandler(uc usecase.QRCaptureUsecase, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{uc: uc, logger: logger}
}

type scanPayloadRequest struct {
	Payload string `json:"payload" validate:"required"`
}

type scanResult struct {
	Target   *entity.NavigationTarget `json:"target"`
	Path     string                   `json:"path"`
	Rejected []string                 `json:"rejected,omitempty"`
}

// Scan accepts either decoded text as JSON {payload} or image frames as multipart.
func (h *ScanHandler) Scan(c echo.Context) error {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return h.scanPayload(c)
	}

	return h.scanFrames(c)
}

func (h *ScanHandler) scanPayload(c echo.Context) error {
	var input scanPayloadRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	target, err := h.uc.ParsePayload(input.Payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, scanResult{Target: target, Path: target.Path()}, "QR code accepted")
}

func (h *ScanHandler) scanFrames(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Expected multipart frames or a JSON payload")
	}

	headers := form.File[frameField]
	if len(headers) == 0 {
		return domainerrors.ErrMissingInput.WithDetails(frameField)
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	frames := make([]image.Image, 0, len(headers))
	for _, header := range headers {
		frame, err := decodeFrame(header.Open)
		if err != nil {
			// an unreadable frame is one without a code
			logger.Debug("Skipping unreadable frame", slog.String("filename", header.Filename), slog.Any("error", err))
		}
		frames = append(frames, frame)
	}

	var rejected []string
	source := camera.NewStaticSource(frames...)
	target, err := h.uc.Scan(c.Request().Context(), source, func(err error) {
		rejected = append(rejected, domainerrors.UserMessage(err, "Invalid QR code"))
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, scanResult{
		Target:   target,
		Path:     target.Path(),
		Rejected: rejected,
	}, "QR code accepted")
}
