package entity

import (
	"slices"
	"strconv"
)

// ClosureOutcome is the branch chosen in the closure wizard.
type ClosureOutcome string

const (
	OutcomeFailed    ClosureOutcome = "failed"
	OutcomeSucceeded ClosureOutcome = "succeeded"
)

// IsValid checks if the outcome is one of the two closure branches.
func (o ClosureOutcome) IsValid() bool {
	return o == OutcomeFailed || o == OutcomeSucceeded
}

// WizardState is a state of the closure wizard.
type WizardState string

const (
	WizardChoosing         WizardState = "CHOOSING"
	WizardFailing          WizardState = "FAILING"
	WizardSucceeding       WizardState = "SUCCEEDING"
	WizardSubmitting       WizardState = "SUBMITTING"
	WizardMissingParameter WizardState = "MISSING_PARAMETER"
)

// IsForm reports whether the state collects a closure form.
func (s WizardState) IsForm() bool {
	return s == WizardFailing || s == WizardSucceeding
}

// Justifications is the enumerated set of failure reasons the server accepts.
type Justifications []string

// Default returns the value a fresh failure form starts with.
func (j Justifications) Default() string {
	if len(j) == 0 {
		return ""
	}

	return j[0]
}

// Contains reports whether value is an accepted justification.
func (j Justifications) Contains(value string) bool {
	return slices.Contains(j, value)
}

// Upload is an in-memory file handle owned by one submission attempt.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IsEmpty reports whether no file was provided.
func (u *Upload) IsEmpty() bool {
	return u == nil || len(u.Data) == 0
}

// FailureForm is the evidence set for closing an order as failed.
type FailureForm struct {
	Token         string  `validate:"required"`
	Justification string  `validate:"required"`
	Photo         *Upload `validate:"required"`
	Notes         string
}

// SuccessForm is the evidence set for closing an order as succeeded.
type SuccessForm struct {
	Token          string  `validate:"required"`
	TitularPresent bool
	SignedDoc      *Upload `validate:"required"`
	IDDoc          *Upload `validate:"required"`
	Notes          string
}

// ClosureSubmission is the transient payload assembled for one closure POST.
// It is never persisted and is dropped after the attempt.
type ClosureSubmission struct {
	OrderID string
	Outcome ClosureOutcome
	Failure *FailureForm
	Success *SuccessForm
}

// Fields returns the multipart text fields of the submission.
func (s *ClosureSubmission) Fields() map[string]string {
	switch s.Outcome {
	case OutcomeFailed:
		return map[string]string{
			"jwt":           s.Failure.Token,
			"justification": s.Failure.Justification,
			"notes":         s.Failure.Notes,
		}
	case OutcomeSucceeded:
		return map[string]string{
			"jwt":             s.Success.Token,
			"titular_present": strconv.FormatBool(s.Success.TitularPresent),
			"notes":           s.Success.Notes,
		}
	default:
		return nil
	}
}

// Files returns the multipart file parts of the submission keyed by field name.
func (s *ClosureSubmission) Files() map[string]*Upload {
	switch s.Outcome {
	case OutcomeFailed:
		return map[string]*Upload{"photo_address": s.Failure.Photo}
	case OutcomeSucceeded:
		return map[string]*Upload{"doc_signed": s.Success.SignedDoc, "doc_id": s.Success.IDDoc}
	default:
		return nil
	}
}

// ClosureInput carries the fields a caller provides to the wizard. Empty values
// and nil pointers keep what the wizard already holds, so a failed submit can be
// retried as is. A non-nil empty Notes clears the held notes.
type ClosureInput struct {
	Token          string
	Justification  string
	TitularPresent *bool
	Notes          *string
	Photo          *Upload
	SignedDoc      *Upload
	IDDoc          *Upload
}

// UploadInfo describes a held file without its content.
type UploadInfo struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	Size        int    `json:"size"`
}

// Info returns the description of u, or nil when no file is held.
func (u *Upload) Info() *UploadInfo {
	if u.IsEmpty() {
		return nil
	}

	return &UploadInfo{Filename: u.Filename, ContentType: u.ContentType, Size: len(u.Data)}
}

// WizardView is the observable state of a closure wizard.
type WizardView struct {
	State          WizardState `json:"state"`
	OrderID        string      `json:"order_id,omitempty"`
	Pending        bool        `json:"pending"`
	Justifications []string    `json:"justifications,omitempty"`

	Justification  string      `json:"justification"`
	TitularPresent bool        `json:"titular_present"`
	Notes          string      `json:"notes"`
	HasToken       bool        `json:"has_token"`
	Photo          *UploadInfo `json:"photo,omitempty"`
	SignedDoc      *UploadInfo `json:"signed_doc,omitempty"`
	IDDoc          *UploadInfo `json:"id_doc,omitempty"`

	// Message is the confirmation of the last successful submission.
	Message string `json:"message,omitempty"`
	// Error is the message of the last failed submission.
	Error string `json:"error,omitempty"`
}
