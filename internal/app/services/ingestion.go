package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
)

var (
	// ErrInvalidSignature indicates the notification signature did not verify.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrInvalidPayload indicates a malformed notification body.
	ErrInvalidPayload = errors.New("invalid payload")
)

// IngestErrorKind classifies ingestion failures for transport-specific mapping.
type IngestErrorKind string

const (
	// IngestErrorUnknown is used when error is nil or not classified.
	IngestErrorUnknown IngestErrorKind = "unknown"
	// IngestErrorInvalidSignature indicates signature mismatch.
	IngestErrorInvalidSignature IngestErrorKind = "invalid_signature"
	// IngestErrorInvalidPayload indicates a body that is not a notification.
	IngestErrorInvalidPayload IngestErrorKind = "invalid_payload"
	// IngestErrorStorage indicates the credential record could not be read.
	IngestErrorStorage IngestErrorKind = "storage"
)

// Reconciler runs a parsed notification through reconciliation.
type Reconciler interface {
	Reconcile(ctx context.Context, notification ports.Notification) (Report, error)
}

// IngestCommand is transport-agnostic webhook ingestion input.
type IngestCommand struct {
	SignatureHeader string
	Headers         http.Header
	Body            []byte
}

// NotificationIngestService verifies, parses and reconciles webhook deliveries.
type NotificationIngestService struct {
	reconciler    Reconciler
	verifierToken string
}

// NewNotificationIngestService constructs an ingestion service. An empty
// verifier token disables signature checks.
func NewNotificationIngestService(reconciler Reconciler, verifierToken string) *NotificationIngestService {
	return &NotificationIngestService{reconciler: reconciler, verifierToken: strings.TrimSpace(verifierToken)}
}

// ClassifyIngestError classifies a returned ingestion error.
func ClassifyIngestError(err error) IngestErrorKind {
	switch {
	case err == nil:
		return IngestErrorUnknown
	case errors.Is(err, ErrInvalidSignature):
		return IngestErrorInvalidSignature
	case errors.Is(err, ErrInvalidPayload):
		return IngestErrorInvalidPayload
	case errors.Is(err, ports.ErrStorage):
		return IngestErrorStorage
	default:
		return IngestErrorUnknown
	}
}

// Ingest verifies the signature when configured, parses the body and reconciles it.
func (s *NotificationIngestService) Ingest(ctx context.Context, cmd IngestCommand) (Report, error) {
	if s.verifierToken != "" && !validSignature(cmd.Body, s.verifierToken, cmd.SignatureHeader) {
		return Report{}, ErrInvalidSignature
	}

	headers := cmd.Headers
	if headers == nil {
		headers = http.Header{}
	}
	notification, err := ParseNotification(ctx, headers, cmd.Body)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return s.reconciler.Reconcile(ctx, notification)
}

// SignPayload returns the base64 HMAC-SHA256 of body keyed by the verifier token.
func SignPayload(body []byte, verifierToken string) string {
	mac := hmac.New(sha256.New, []byte(verifierToken))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func validSignature(body []byte, verifierToken, signature string) bool {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return false
	}
	expected := SignPayload(body, verifierToken)
	return hmac.Equal([]byte(expected), []byte(signature))
}
