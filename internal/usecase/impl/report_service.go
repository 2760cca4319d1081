package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "fieldservice/internal/delivery/context"
	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/service"
	"fieldservice/internal/usecase"
	"fieldservice/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	gateway service.OrderGateway
	archive service.ReportArchive
	logger  *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	Gateway service.OrderGateway
	// Archive is nil when no bucket is configured.
	Archive service.ReportArchive `optional:"true"`
	Logger  *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		gateway: params.Gateway,
		archive: params.Archive,
		logger:  params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Download fetches the order PDF and, when asked, keeps a copy in the archive.
func (srv *reportService) Download(ctx context.Context, orderID string, full, archive bool) (*entity.Report, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domainerrors.ErrMissingParameter
	}
	if archive && srv.archive == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("report archiving is not configured")
	}

	doc, err := srv.gateway.DownloadPDF(ctx, orderID, full)
	if err != nil {
		return nil, errors.Wrapf(err, "download report of order %s", orderID)
	}
	doc.Filename = util.SafeFilename(doc.Filename, reportFilename(orderID, full))
	if doc.ContentType == "" {
		doc.ContentType = "application/pdf"
	}

	report := &entity.Report{Document: doc}
	srv.log(ctx).Info("Report downloaded",
		slog.String("order_id", orderID),
		slog.Bool("full", full),
		slog.String("size", util.FormatBytes(int64(len(doc.Data)))),
	)

	if archive {
		key, err := srv.archive.Store(ctx, orderID, doc)
		if err != nil {
			return nil, errors.Wrap(err, "archive report")
		}
		report.ArchiveKey = key
	}

	return report, nil
}

func reportFilename(orderID string, full bool) string {
	if full {
		return fmt.Sprintf("orden_%s_full.pdf", orderID)
	}

	return fmt.Sprintf("orden_%s.pdf", orderID)
}
