package handler

import (
	"image"
	"io"
	"mime/multipart"

	"fieldservice/internal/infra/camera"

	"github.com/pkg/errors"
)

func decodeFrame(open func() (multipart.File, error)) (image.Image, error) {
	file, err := open()
	if err != nil {
		return nil, errors.Wrap(err, "open frame")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "read frame")
	}

	return camera.DecodeImage(data)
}
