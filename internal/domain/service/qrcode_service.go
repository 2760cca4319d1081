package service

import (
	"context"
	"errors"
	"image"

	"fieldservice/internal/domain/entity"
)

// ErrNoQRCode is returned by a QRDecoder when a frame holds no readable code.
var ErrNoQRCode = errors.New("no qr code in frame")

// QRCodeService defines the interface for open-link QR generation and parsing
type QRCodeService interface {
	// OpenLink builds the URL a technician's QR code points to
	OpenLink(target entity.NavigationTarget) string

	// GenerateOpenLinkQR renders the open link as a PNG QR code
	GenerateOpenLinkQR(target entity.NavigationTarget) ([]byte, error)

	// ParseOpenLink extracts the order id and bearer token from a scanned payload
	ParseOpenLink(payload string) (*entity.NavigationTarget, error)
}

// QRDecoder reads the text of a QR code from an image.
type QRDecoder interface {
	Decode(img image.Image) (string, error)
}

// FrameSource is a capture device producing frames to decode, such as a camera.
// Frames acquires the device; Close releases it and must be safe to call more than once.
type FrameSource interface {
	Frames(ctx context.Context) (<-chan image.Image, error)
	Close() error
}
