package impl

import (
	"context"
	"testing"

	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	mockservice "fieldservice/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_Download(t *testing.T) {
	tests := []struct {
		name     string
		full     bool
		filename string
		want     string
	}{
		{name: "server filename", filename: "orden_42.pdf", want: "orden_42.pdf"},
		{name: "fallback", want: "orden_42.pdf"},
		{name: "full fallback", full: true, want: "orden_42_full.pdf"},
		{name: "path stripped", filename: "../../etc/orden.pdf", want: "orden.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := mockservice.NewMockOrderGateway(t)
			srv := NewReportService(ReportServiceParams{Gateway: gateway, Logger: discardLogger()})

			gateway.EXPECT().DownloadPDF(mock.Anything, "42", tt.full).
				Return(&entity.Document{Filename: tt.filename, Data: []byte("%PDF")}, nil).Once()

			report, err := srv.Download(context.Background(), "42", tt.full, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Document.Filename)
			assert.Equal(t, "application/pdf", report.Document.ContentType)
			assert.Empty(t, report.ArchiveKey)
		})
	}
}

func TestReportService_Download_Archive(t *testing.T) {
	gateway := mockservice.NewMockOrderGateway(t)
	archive := mockservice.NewMockReportArchive(t)
	srv := NewReportService(ReportServiceParams{Gateway: gateway, Archive: archive, Logger: discardLogger()})

	doc := &entity.Document{Filename: "orden_42.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}
	gateway.EXPECT().DownloadPDF(mock.Anything, "42", false).Return(doc, nil).Once()
	archive.EXPECT().Store(mock.Anything, "42", doc).Return("reports/42/20261015T120000Z-orden_42.pdf", nil).Once()

	report, err := srv.Download(context.Background(), "42", false, true)
	require.NoError(t, err)
	assert.Equal(t, "reports/42/20261015T120000Z-orden_42.pdf", report.ArchiveKey)
}

func TestReportService_Download_ArchiveNotConfigured(t *testing.T) {
	srv := NewReportService(ReportServiceParams{Gateway: mockservice.NewMockOrderGateway(t), Logger: discardLogger()})

	_, err := srv.Download(context.Background(), "42", false, true)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_Download_MissingID(t *testing.T) {
	srv := NewReportService(ReportServiceParams{Gateway: mockservice.NewMockOrderGateway(t), Logger: discardLogger()})

	_, err := srv.Download(context.Background(), "", false, false)
	assert.ErrorIs(t, err, domainerrors.ErrMissingParameter)
}
