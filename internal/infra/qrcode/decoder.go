package qrcode

import (
	"image"

	"fieldservice/internal/domain/service"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/pkg/errors"
)

type zxingDecoder struct {
	hints map[gozxing.DecodeHintType]any
}

// NewDecoder returns a QRDecoder backed by the zxing QR reader.
func NewDecoder() service.QRDecoder {
	return &zxingDecoder{
		hints: map[gozxing.DecodeHintType]any{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// Decode returns service.ErrNoQRCode when the frame holds no readable code.
func (d *zxingDecoder) Decode(img image.Image) (string, error) {
	if img == nil {
		return "", service.ErrNoQRCode
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", errors.Wrap(err, "binarize frame")
	}

	// A fresh reader per frame: zxing readers are not safe for concurrent use.
	result, err := zxingqr.NewQRCodeReader().Decode(bmp, d.hints)
	if err != nil {
		// not found, checksum and format failures all mean "nothing readable here"
		var readerErr gozxing.ReaderException
		if errors.As(err, &readerErr) {
			return "", service.ErrNoQRCode
		}

		return "", errors.Wrap(err, "decode qr code")
	}

	return result.GetText(), nil
}
