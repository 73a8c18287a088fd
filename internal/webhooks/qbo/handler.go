package qbo

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/fr0stylo/quoterecon/internal/app/services"
)

const (
	// SignatureHeader carries the base64 HMAC-SHA256 of the body.
	SignatureHeader = "intuit-signature"
	maxPayloadBytes = 1 << 20
)

// Ingester verifies, parses and reconciles a notification.
type Ingester interface {
	Ingest(ctx context.Context, cmd services.IngestCommand) (services.Report, error)
}

// Handler processes accounting change notifications.
type Handler struct {
	ingest  Ingester
	log     *slog.Logger
	metrics webhookMetrics
}

// Response is the acknowledgement body.
type Response struct {
	Status   string         `json:"status"`
	Entities int            `json:"entities"`
	Ignored  int            `json:"ignored"`
	Outcomes map[string]int `json:"outcomes,omitempty"`
}

// NewHandler constructs a notification webhook handler.
func NewHandler(ingest Ingester, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{ingest: ingest, log: log, metrics: newWebhookMetrics()}
}

// Handle acknowledges every structurally valid notification with 200,
// whatever happened to its entities.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	h.metrics.recordRequest(ctx)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.metrics.recordRejected(ctx, "read_body")
		http.Error(w, "invalid payload", http.StatusInternalServerError)
		return nil
	}

	report, err := h.ingest.Ingest(ctx, services.IngestCommand{
		SignatureHeader: r.Header.Get(SignatureHeader),
		Headers:         r.Header,
		Body:            body,
	})
	if err != nil {
		kind := services.ClassifyIngestError(err)
		h.metrics.recordRejected(ctx, string(kind))
		switch kind {
		case services.IngestErrorInvalidSignature:
			h.log.WarnContext(ctx, "notification signature rejected")
			http.Error(w, "invalid signature", http.StatusUnauthorized)
			return nil
		case services.IngestErrorInvalidPayload:
			h.log.ErrorContext(ctx, "notification payload rejected", "error", err)
			http.Error(w, "invalid payload", http.StatusInternalServerError)
			return nil
		case services.IngestErrorStorage:
			h.log.ErrorContext(ctx, "credential storage unavailable", "error", err)
			http.Error(w, "credentials unavailable", http.StatusInternalServerError)
			return nil
		default:
			return err
		}
	}

	h.metrics.recordAccepted(ctx, len(report.Entities))
	resp := Response{Status: "ok", Entities: len(report.Entities), Ignored: report.Ignored}
	if len(report.Entities) > 0 {
		resp.Outcomes = make(map[string]int, len(report.Entities))
		for _, entity := range report.Entities {
			resp.Outcomes[string(entity.Outcome)]++
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(resp)
}
