package entity

import "time"

// EvidenceKind identifies what a piece of evidence proves.
type EvidenceKind string

const (
	EvidenceAddressPhoto EvidenceKind = "foto_domicilio"
	EvidenceSignedDoc    EvidenceKind = "doc_firmado"
	EvidenceIdentityDoc  EvidenceKind = "doc_identidad"
)

// Evidence is a file attached to an order. It never changes once created.
type Evidence struct {
	ID        int64        `json:"id"`
	Kind      EvidenceKind `json:"kind"`
	File      string       `json:"file"`
	FileHash  string       `json:"file_hash,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
