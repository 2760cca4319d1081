package usecase

import (
	"context"

	"fieldservice/internal/domain/entity"
	"fieldservice/internal/domain/service"
)

// QRCaptureUsecase turns camera frames into a navigation target.
type QRCaptureUsecase interface {
	// Scan decodes frames from source until one carries a valid open link, the
	// context ends or the source runs dry. The source is released on every exit
	// path, before the target is returned. Invalid payloads are reported to
	// onError (which may be nil) and scanning continues.
	Scan(ctx context.Context, source service.FrameSource, onError func(error)) (*entity.NavigationTarget, error)

	// ParsePayload extracts the order id and token from a decoded payload.
	ParsePayload(payload string) (*entity.NavigationTarget, error)
}
