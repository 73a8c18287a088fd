package ports

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotFound indicates an expected absence of a customer, site or quote.
	ErrNotFound = errors.New("not found")
	// ErrAuth indicates the token endpoint rejected a credential exchange.
	ErrAuth = errors.New("authorization rejected")
	// ErrUnauthorized indicates the accounting API answered 401 for a request.
	ErrUnauthorized = errors.New("upstream unauthorized")
	// ErrUpstream indicates a non-auth failure talking to the accounting API.
	ErrUpstream = errors.New("upstream failure")
	// ErrStorage indicates the persisted credential record is absent or unreadable.
	ErrStorage = errors.New("credential storage unavailable")
	// ErrValidation indicates an invoice is missing data required for matching.
	ErrValidation = errors.New("invalid invoice data")
)

// Fault is the structured error body returned by the accounting API.
type Fault struct {
	Type   string       `json:"type"`
	Errors []FaultError `json:"Error"`
}

// FaultError is one entry of a Fault.
type FaultError struct {
	Message string `json:"Message"`
	Detail  string `json:"Detail"`
	Code    string `json:"code"`
	Element string `json:"element,omitempty"`
}

func (f *Fault) String() string {
	if f == nil {
		return ""
	}
	parts := make([]string, 0, len(f.Errors))
	for _, e := range f.Errors {
		part := strings.TrimSpace(e.Code + " " + e.Message)
		if e.Detail != "" {
			part += ": " + e.Detail
		}
		parts = append(parts, part)
	}
	if f.Type == "" {
		return strings.Join(parts, "; ")
	}
	return f.Type + ": " + strings.Join(parts, "; ")
}

// UpstreamError describes a failed call to the accounting API.
type UpstreamError struct {
	Op         string
	StatusCode int
	Fault      *Fault
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := e.Op
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	switch {
	case e.Fault != nil:
		msg += ": " + e.Fault.String()
	case e.Body != "":
		msg += ": " + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is maps 401 responses to ErrUnauthorized and everything else to ErrUpstream.
func (e *UpstreamError) Is(target error) bool {
	if target == ErrUnauthorized {
		return e.StatusCode == http.StatusUnauthorized
	}
	if target == ErrUpstream {
		return e.StatusCode != http.StatusUnauthorized
	}
	return false
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ValidationError names the invoice field that failed validation.
type ValidationError struct {
	InvoiceID string
	Field     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invoice %s: missing %s", e.InvoiceID, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
