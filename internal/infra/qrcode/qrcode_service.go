package qrcode

import (
	"net/url"
	"strings"

	domainerrors "fieldservice/internal/domain/errors"
	"fieldservice/internal/domain/entity"
	"fieldservice/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	openBaseURL          string
}

// NewQRCodeService creates a new QR code service instance.
// openBaseURL is the page technicians land on, e.g. https://app.example.com/open.
func NewQRCodeService(size int, errorCorrectionLevel, openBaseURL string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		openBaseURL:          strings.TrimRight(openBaseURL, "?#"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// OpenLink puts the order id in the query and the token in the fragment.
func (s *qrcodeService) OpenLink(target entity.NavigationTarget) string {
	query := url.Values{"id": {target.OrderID}}
	fragment := url.Values{"jwt": {target.Token}}

	sep := "?"
	if strings.Contains(s.openBaseURL, "?") {
		sep = "&"
	}

	return s.openBaseURL + sep + query.Encode() + "#" + fragment.Encode()
}

// GenerateOpenLinkQR renders the open link as a PNG.
func (s *qrcodeService) GenerateOpenLinkQR(target entity.NavigationTarget) ([]byte, error) {
	if target.OrderID == "" || target.Token == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	qrCode, err := qrcode.New(s.OpenLink(target), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOpenLink accepts any absolute URL carrying an id query parameter and a jwt fragment.
func (s *qrcodeService) ParseOpenLink(payload string) (*entity.NavigationTarget, error) {
	u, err := url.Parse(strings.TrimSpace(payload))
	if err != nil {
		return nil, domainerrors.ErrInvalidQRPayload.WithDetails("not a URL")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, domainerrors.ErrInvalidQRPayload.WithDetails("not an absolute URL")
	}

	orderID := strings.TrimSpace(u.Query().Get("id"))
	if orderID == "" {
		return nil, domainerrors.ErrInvalidQRPayload.WithDetails("missing id")
	}

	token := fragmentToken(u.EscapedFragment())
	if token == "" {
		return nil, domainerrors.ErrInvalidQRPayload.WithDetails("missing jwt")
	}

	return &entity.NavigationTarget{OrderID: orderID, Token: token}, nil
}

func fragmentToken(fragment string) string {
	if values, err := url.ParseQuery(fragment); err == nil {
		return strings.TrimSpace(values.Get("jwt"))
	}

	// Unescaped junk elsewhere in the fragment; take the raw jwt= prefix.
	raw, ok := strings.CutPrefix(fragment, "jwt=")
	if !ok {
		return ""
	}
	raw, _, _ = strings.Cut(raw, "&")

	return strings.TrimSpace(raw)
}
