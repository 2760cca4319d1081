package service

import (
	"context"

	"fieldservice/internal/domain/entity"
)

// ReportArchive keeps copies of downloaded order reports.
type ReportArchive interface {
	// Store saves the document and returns the key it was stored under.
	Store(ctx context.Context, orderID string, doc *entity.Document) (string, error)
	Close() error
}
