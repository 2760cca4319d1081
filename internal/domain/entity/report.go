package entity

// Report is a downloaded order PDF and, when archived, the key it was stored under.
type Report struct {
	Document   *Document `json:"-"`
	ArchiveKey string    `json:"archive_key,omitempty"`
}

// OpenLinkQR is the QR code a technician scans to open an order.
type OpenLinkQR struct {
	Link string `json:"link"`
	PNG  []byte `json:"-"`
}
