package usecase

import (
	"context"

	"fieldservice/internal/domain/entity"
)

// ReportUsecase downloads order PDFs and optionally archives them.
type ReportUsecase interface {
	Download(ctx context.Context, orderID string, full, archive bool) (*entity.Report, error)
}
