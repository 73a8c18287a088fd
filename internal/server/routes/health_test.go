package routes

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthReportsDatabaseState(t *testing.T) {
	t.Parallel()

	ok := newTestEcho(NewHealthRoutes(pingerFunc(func(context.Context) error { return nil }), nil))
	if rec := doRequest(ok, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}

	down := newTestEcho(NewHealthRoutes(pingerFunc(func(context.Context) error { return errors.New("closed") }), nil))
	if rec := doRequest(down, http.MethodGet, "/healthz", ""); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestMetricsEndpointServesRegistry(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "quoterecon_test_total", Help: "test"})
	registry.MustRegister(counter)
	counter.Inc()

	e := newTestEcho(NewHealthRoutes(nil, registry))
	rec := doRequest(e, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "quoterecon_test_total 1") {
		t.Fatalf("metrics output missing counter: %s", rec.Body.String())
	}

	disabled := newTestEcho(NewHealthRoutes(nil, nil))
	if rec := doRequest(disabled, http.MethodGet, "/metrics", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("metrics should be absent when disabled: got=%d", rec.Code)
	}
}
