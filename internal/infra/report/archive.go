// Package report archives downloaded order PDFs in a gocloud.dev blob bucket.
package report

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	"fieldservice/config"
	"fieldservice/internal/domain/entity"
	"fieldservice/internal/domain/service"
	"fieldservice/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	// bucket drivers selectable through reports.bucketUrl
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

type blobArchive struct {
	bucket *blob.Bucket
	prefix string
	now    func() time.Time
	logger *slog.Logger
}

// NewArchive opens the bucket at bucketURL, e.g. file:///var/lib/fieldservice/reports or mem://.
func NewArchive(ctx context.Context, bucketURL, prefix string, logger *slog.Logger) (service.ReportArchive, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open report bucket %s", bucketURL)
	}

	return &blobArchive{
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		now:    time.Now,
		logger: logger,
	}, nil
}

// NewArchiveFromConfig returns nil when no bucket is configured.
func NewArchiveFromConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.ReportArchive, error) {
	if cfg.Reports == nil || cfg.Reports.BucketURL == "" {
		return nil, nil
	}

	return NewArchive(ctx, cfg.Reports.BucketURL, cfg.Reports.Prefix, logger)
}

// Store writes doc under {prefix}/{orderID}/{timestamp}-{filename}.
func (a *blobArchive) Store(ctx context.Context, orderID string, doc *entity.Document) (string, error) {
	if doc == nil || len(doc.Data) == 0 {
		return "", errors.New("empty document")
	}

	filename := util.SafeFilename(doc.Filename, "orden_"+orderID+".pdf")
	key := path.Join(a.prefix, util.SafeFilename(orderID, "unknown"),
		a.now().UTC().Format("20060102T150405Z")+"-"+filename)

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}

	opts := &blob.WriterOptions{
		ContentType: contentType,
		Metadata: map[string]string{
			"order_id": orderID,
			"sha256":   util.Checksum(doc.Data),
		},
	}
	if err := a.bucket.WriteAll(ctx, key, doc.Data, opts); err != nil {
		return "", errors.Wrapf(err, "write report %s", key)
	}

	a.logger.Info("Report archived",
		slog.String("order_id", orderID),
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(doc.Data)))),
	)

	return key, nil
}

func (a *blobArchive) Close() error {
	return a.bucket.Close()
}
