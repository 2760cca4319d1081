package handler

import (
	"io"
	"net/http"

	"fieldservice/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// formUpload reads one multipart file. A missing field yields nil.
func formUpload(c echo.Context, field string) (*entity.Upload, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read form file %s", field)
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open form file %s", field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read form file %s", field)
	}

	return &entity.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
