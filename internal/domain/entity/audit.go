package entity

import (
	"encoding/json"
	"time"
)

// AuditEntry records an administrative change made to an order.
type AuditEntry struct {
	ID        int64           `json:"id"`
	Action    string          `json:"action"`
	Admin     json.RawMessage `json:"admin,omitempty"`
	OldValues json.RawMessage `json:"old_values,omitempty"`
	NewValues json.RawMessage `json:"new_values,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Document is a downloaded file, typically an order PDF.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}
