package qrcode

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/entity"
	"fieldservice/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(256, tt.errorCorrectionLevel, "https://host/app/open")
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_OpenLink(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://host/app/open")

	link := svc.OpenLink(entity.NavigationTarget{OrderID: "42", Token: "abc123"})
	assert.Equal(t, "https://host/app/open?id=42#jwt=abc123", link)
}

func TestQRCodeService_ParseOpenLink(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://host/app/open")

	tests := []struct {
		name    string
		payload string
		want    *entity.NavigationTarget
	}{
		{
			name:    "Query id and fragment jwt",
			payload: "https://host/app/open?id=42#jwt=abc123",
			want:    &entity.NavigationTarget{OrderID: "42", Token: "abc123"},
		},
		{
			name:    "Extra query parameters",
			payload: "http://localhost:5173/open?lang=es&id=7#jwt=eyJ.a.b",
			want:    &entity.NavigationTarget{OrderID: "7", Token: "eyJ.a.b"},
		},
		{
			name:    "Surrounding whitespace",
			payload: "  https://host/open?id=9#jwt=t  ",
			want:    &entity.NavigationTarget{OrderID: "9", Token: "t"},
		},
		{
			name:    "Raw fragment that is not a query string",
			payload: "https://host/open?id=9#jwt=t;x",
			want:    &entity.NavigationTarget{OrderID: "9", Token: "t;x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseOpenLink(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQRCodeService_ParseOpenLink_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://host/app/open")

	payloads := map[string]string{
		"Plain text":     "hello world",
		"Relative URL":   "/open?id=42#jwt=abc",
		"Missing id":     "https://host/app/open#jwt=abc123",
		"Empty id":       "https://host/app/open?id=#jwt=abc123",
		"Missing jwt":    "https://host/app/open?id=42",
		"Empty jwt":      "https://host/app/open?id=42#jwt=",
		"Jwt in query":   "https://host/app/open?id=42&jwt=abc123",
		"Unparseable":    "http://[::1",
		"Empty payload":  "",
		"Other fragment": "https://host/app/open?id=42#token=abc",
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			got, err := svc.ParseOpenLink(payload)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRPayload), "got %v", err)
		})
	}
}

func TestQRCodeService_GenerateOpenLinkQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://host/app/open")

	qrBytes, err := svc.GenerateOpenLinkQR(entity.NavigationTarget{OrderID: "42", Token: "abc123"})
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateOpenLinkQR_MissingCredentials(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://host/app/open")

	_, err := svc.GenerateOpenLinkQR(entity.NavigationTarget{OrderID: "42"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://host/app/open")
	target := entity.NavigationTarget{OrderID: "42", Token: "eyJhbGciOiJIUzI1NiJ9.eyJ1dWlkX29yZGVyIjoiYSJ9.c2ln"}

	qrBytes, err := svc.GenerateOpenLinkQR(target)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)

	payload, err := NewDecoder().Decode(img)
	require.NoError(t, err)
	assert.Equal(t, svc.OpenLink(target), payload)

	parsed, err := svc.ParseOpenLink(payload)
	require.NoError(t, err)
	assert.Equal(t, target, *parsed)
}

func TestDecoder_BlankFrame(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 120, 120))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	_, err := NewDecoder().Decode(img)
	assert.ErrorIs(t, err, service.ErrNoQRCode)
}

func TestDecoder_NilFrame(t *testing.T) {
	_, err := NewDecoder().Decode(nil)
	assert.ErrorIs(t, err, service.ErrNoQRCode)
}
