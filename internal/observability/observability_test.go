package observability

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
)

func TestWrapSlogHandlerAddsContextFields(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(WrapSlogHandler(slog.NewTextHandler(&buf, nil)))

	ctx := WithRequestMetadata(context.Background(), "req-1", "/webhooks/qbo")
	ctx = WithEntityIdentity(ctx, "9130", "130")
	log.InfoContext(ctx, "invoice skipped")

	out := buf.String()
	for _, want := range []string{"request_id=req-1", "route=/webhooks/qbo", "realm_id=9130", "invoice_id=130"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log line missing %q: %s", want, out)
		}
	}
}

func TestWrapSlogHandlerOmitsMissingFields(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(WrapSlogHandler(slog.NewTextHandler(&buf, nil)))
	log.InfoContext(context.Background(), "startup")
	if strings.Contains(buf.String(), "invoice_id") || strings.Contains(buf.String(), "trace_id") {
		t.Fatalf("unexpected context fields: %s", buf.String())
	}
}

func TestSetupOpenTelemetryExportsToPrometheus(t *testing.T) {
	registry := prometheus.NewRegistry()
	shutdown, err := SetupOpenTelemetry(context.Background(), slog.Default(), OpenTelemetryConfig{
		ServiceName:        "quoterecon-test",
		ServiceVer:         "test",
		PrometheusRegistry: registry,
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	counter, err := otel.Meter("observability-test").Int64Counter("quoterecon.test.events")
	if err != nil {
		t.Fatalf("create counter: %v", err)
	}
	counter.Add(context.Background(), 2)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, family := range families {
		if strings.HasPrefix(family.GetName(), "quoterecon_test_events") {
			found = true
		}
	}
	if !found {
		t.Fatalf("counter not exported to prometheus registry")
	}
}

func TestSetupOpenTelemetryDisabledIsNoop(t *testing.T) {
	shutdown, err := SetupOpenTelemetry(context.Background(), slog.Default(), OpenTelemetryConfig{})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
