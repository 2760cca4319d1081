// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/service"
	"fieldservice/internal/usecase"

	"github.com/pkg/errors"
)

// qrCaptureService implements the QRCaptureUsecase interface.
type qrCaptureService struct {
	decoder service.QRDecoder
	links   service.QRCodeService
	logger  *slog.Logger
}

// NewQRCaptureService is the constructor for qrCaptureService.
func NewQRCaptureService(decoder service.QRDecoder, links service.QRCodeService, logger *slog.Logger) usecase.QRCaptureUsecase {
	return &qrCaptureService{
		decoder: decoder,
		links:   links,
		logger:  logger,
	}
}

func (srv *qrCaptureService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Scan reads frames until a valid open link shows up.
func (srv *qrCaptureService) Scan(ctx context.Context, source service.FrameSource, onError func(error)) (*entity.NavigationTarget, error) {
	frames, err := source.Frames(ctx)
	if err != nil {
		_ = source.Close()
		srv.log(ctx).Warn("Camera unavailable", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCameraUnavailable.WithDetails(err.Error()), "acquire frame source")
	}
	defer func() {
		if err := source.Close(); err != nil {
			srv.log(ctx).Warn("Failed to release frame source", slog.Any("error", err))
		}
	}()

	decoded := 0
	for {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "scan cancelled")
		case frame, ok := <-frames:
			if !ok {
				if ctx.Err() != nil {
					return nil, errors.Wrap(ctx.Err(), "scan cancelled")
				}
				srv.log(ctx).Debug("Frame source exhausted", slog.Int("decoded_payloads", decoded))

				return nil, domainerrors.ErrNoQRCodeFound
			}

			payload, err := srv.decoder.Decode(frame)
			if err != nil {
				if !errors.Is(err, service.ErrNoQRCode) {
					srv.log(ctx).Debug("Frame decode failed", slog.Any("error", err))
				}

				continue
			}
			decoded++

			target, err := srv.ParsePayload(payload)
			if err != nil {
				srv.log(ctx).Info("Rejected QR payload", slog.Any("error", err))
				if onError != nil {
					onError(err)
				}

				continue
			}

			// release the camera before handing the target over
			if err := source.Close(); err != nil {
				srv.log(ctx).Warn("Failed to release frame source", slog.Any("error", err))
			}
			srv.log(ctx).Info("QR code accepted", slog.String("order_id", target.OrderID))

			return target, nil
		}
	}
}

// ParsePayload validates a decoded payload as an open link.
func (srv *qrCaptureService) ParsePayload(payload string) (*entity.NavigationTarget, error) {
	return srv.links.ParseOpenLink(payload)
}
