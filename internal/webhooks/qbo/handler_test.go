package qbo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
	"github.com/fr0stylo/quoterecon/internal/app/services"
)

type reconcilerFunc func(context.Context, ports.Notification) (services.Report, error)

func (f reconcilerFunc) Reconcile(ctx context.Context, notification ports.Notification) (services.Report, error) {
	return f(ctx, notification)
}

const invoiceCreated = `{"eventNotifications":[{"realmId":"9130","dataChangeEvent":{"entities":[{"name":"Invoice","id":"130","operation":"Create"}]}}]}`

func serve(t *testing.T, h *Handler, body []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/qbo", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	if err := h.Handle(rec, req); err != nil {
		t.Fatalf("handle request: %v", err)
	}
	return rec
}

func TestHandleAcknowledgesRegardlessOfEntityOutcome(t *testing.T) {
	t.Parallel()

	reconciler := reconcilerFunc(func(context.Context, ports.Notification) (services.Report, error) {
		return services.Report{Entities: []services.EntityResult{
			{InvoiceID: "130", Outcome: services.OutcomeSkippedNotFound},
		}}, nil
	})
	h := NewHandler(services.NewNotificationIngestService(reconciler, ""), nil)

	rec := serve(t, h, []byte(invoiceCreated), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Entities != 1 || resp.Outcomes[string(services.OutcomeSkippedNotFound)] != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHandleMalformedPayloadIsServerError(t *testing.T) {
	t.Parallel()

	reconciler := reconcilerFunc(func(context.Context, ports.Notification) (services.Report, error) {
		t.Fatalf("reconciler must not run for malformed payloads")
		return services.Report{}, nil
	})
	h := NewHandler(services.NewNotificationIngestService(reconciler, ""), nil)

	rec := serve(t, h, []byte(`{"eventNotifications":[`), "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}
}

func TestHandleStorageFailureIsServerError(t *testing.T) {
	t.Parallel()

	reconciler := reconcilerFunc(func(context.Context, ports.Notification) (services.Report, error) {
		return services.Report{}, fmt.Errorf("load credentials: %w", ports.ErrStorage)
	})
	h := NewHandler(services.NewNotificationIngestService(reconciler, ""), nil)

	rec := serve(t, h, []byte(invoiceCreated), "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}
}

func TestHandleRejectsBadSignature(t *testing.T) {
	t.Parallel()

	reconciler := reconcilerFunc(func(context.Context, ports.Notification) (services.Report, error) {
		return services.Report{}, nil
	})
	h := NewHandler(services.NewNotificationIngestService(reconciler, "verifier"), nil)
	body := []byte(invoiceCreated)

	if rec := serve(t, h, body, "AAAA"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status for bad signature: %d", rec.Code)
	}
	if rec := serve(t, h, body, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status for missing signature: %d", rec.Code)
	}
	if rec := serve(t, h, body, services.SignPayload(body, "verifier")); rec.Code != http.StatusOK {
		t.Fatalf("unexpected status for valid signature: %d", rec.Code)
	}
}

func TestHandleEmptyNotificationIsAcknowledged(t *testing.T) {
	t.Parallel()

	reconciler := reconcilerFunc(func(_ context.Context, n ports.Notification) (services.Report, error) {
		if len(n) != 0 {
			t.Fatalf("expected empty notification, got %+v", n)
		}
		return services.Report{}, nil
	})
	h := NewHandler(services.NewNotificationIngestService(reconciler, ""), nil)

	if rec := serve(t, h, []byte(`{}`), ""); rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
