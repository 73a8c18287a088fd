package routes

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
	"github.com/fr0stylo/quoterecon/internal/app/services"
	qbowebhook "github.com/fr0stylo/quoterecon/internal/webhooks/qbo"
)

type reconcilerFunc func(context.Context, ports.Notification) (services.Report, error)

func (f reconcilerFunc) Reconcile(ctx context.Context, notification ports.Notification) (services.Report, error) {
	return f(ctx, notification)
}

func TestWebhookRouteDelegatesToHandler(t *testing.T) {
	t.Parallel()

	var got ports.Notification
	reconciler := reconcilerFunc(func(_ context.Context, n ports.Notification) (services.Report, error) {
		got = n
		return services.Report{Entities: []services.EntityResult{{InvoiceID: "130", Outcome: services.OutcomeUpdated}}}, nil
	})
	handler := qbowebhook.NewHandler(services.NewNotificationIngestService(reconciler, ""), nil)
	e := newTestEcho(NewWebhookRoutes(handler))

	body := `{"eventNotifications":[{"realmId":"9130","dataChangeEvent":{"entities":[{"name":"Invoice","id":"130","operation":"Create"}]}}]}`
	rec := doRequest(e, http.MethodPost, "/webhooks/qbo", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	if len(got) != 1 || got[0].EntityID != "130" {
		t.Fatalf("unexpected notification: %+v", got)
	}
	if !strings.Contains(rec.Body.String(), `"updated":1`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestWebhookRouteRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	reconciler := reconcilerFunc(func(context.Context, ports.Notification) (services.Report, error) {
		t.Fatalf("reconcile should not run for malformed bodies")
		return services.Report{}, nil
	})
	handler := qbowebhook.NewHandler(services.NewNotificationIngestService(reconciler, ""), nil)
	e := newTestEcho(NewWebhookRoutes(handler))

	rec := doRequest(e, http.MethodPost, "/webhooks/qbo", "{not json")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}
}
