package impl

import (
	"context"
	"image"
	"testing"

	"fieldservice/internal/domain/entity"
	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/service"
	"fieldservice/internal/infra/camera"
	mockservice "fieldservice/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func frame() image.Image {
	return image.NewGray(image.Rect(0, 0, 4, 4))
}

func TestQRCapture_Scan_SkipsInvalidPayloads(t *testing.T) {
	decoder := mockservice.NewMockQRDecoder(t)
	links := mockservice.NewMockQRCodeService(t)
	srv := NewQRCaptureService(decoder, links, discardLogger())

	decoder.EXPECT().Decode(mock.Anything).Return("", service.ErrNoQRCode).Once()
	decoder.EXPECT().Decode(mock.Anything).Return("https://example.com/menu", nil).Once()
	decoder.EXPECT().Decode(mock.Anything).Return("https://app.example.com/open?id=42#jwt=abc", nil).Once()

	links.EXPECT().ParseOpenLink("https://example.com/menu").
		Return(nil, domainerrors.ErrInvalidQRPayload.WithDetails("unexpected host"))
	links.EXPECT().ParseOpenLink("https://app.example.com/open?id=42#jwt=abc").
		Return(&entity.NavigationTarget{OrderID: "42", Token: "abc"}, nil)

	source := camera.NewStaticSource(frame(), frame(), frame(), frame())

	var reported []error
	target, err := srv.Scan(context.Background(), source, func(err error) {
		reported = append(reported, err)
	})

	require.NoError(t, err)
	assert.Equal(t, &entity.NavigationTarget{OrderID: "42", Token: "abc"}, target)
	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], domainerrors.ErrInvalidQRPayload)
	assert.True(t, source.Released(), "camera must be released before navigating")
}

func TestQRCapture_Scan_ExhaustedSource(t *testing.T) {
	decoder := mockservice.NewMockQRDecoder(t)
	links := mockservice.NewMockQRCodeService(t)
	srv := NewQRCaptureService(decoder, links, discardLogger())

	decoder.EXPECT().Decode(mock.Anything).Return("", service.ErrNoQRCode)

	source := camera.NewStaticSource(frame(), frame())
	target, err := srv.Scan(context.Background(), source, nil)

	assert.Nil(t, target)
	assert.ErrorIs(t, err, domainerrors.ErrNoQRCodeFound)
	assert.True(t, source.Released())
}

func TestQRCapture_Scan_CameraUnavailable(t *testing.T) {
	srv := NewQRCaptureService(mockservice.NewMockQRDecoder(t), mockservice.NewMockQRCodeService(t), discardLogger())

	source := camera.NewFileSource("/nonexistent/frame.png")
	target, err := srv.Scan(context.Background(), source, nil)

	assert.Nil(t, target)
	assert.ErrorIs(t, err, domainerrors.ErrCameraUnavailable)
	assert.True(t, source.Released())
}

func TestQRCapture_Scan_Cancelled(t *testing.T) {
	srv := NewQRCaptureService(mockservice.NewMockQRDecoder(t), mockservice.NewMockQRCodeService(t), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := camera.NewChannelSource(1)
	target, err := srv.Scan(ctx, source, nil)

	assert.Nil(t, target)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, source.Released())
}

func TestQRCapture_ParsePayload(t *testing.T) {
	links := mockservice.NewMockQRCodeService(t)
	srv := NewQRCaptureService(mockservice.NewMockQRDecoder(t), links, discardLogger())

	links.EXPECT().ParseOpenLink("not a link").Return(nil, domainerrors.ErrInvalidQRPayload)

	_, err := srv.ParsePayload("not a link")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQRPayload)
}
