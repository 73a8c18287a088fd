package config

import (
	"testing"
	"time"
)

func TestLoadDefaultsForLocalDevelopment(t *testing.T) {
	t.Setenv("QUOTERECON_ENV", "dev")
	t.Setenv("QUOTERECON_SESSION_SECRET", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Auth.SessionSecret != localSessionSecret {
		t.Fatalf("expected local fallback secret, got %q", cfg.Auth.SessionSecret)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.QBO.Environment != "sandbox" || cfg.QBO.APIBaseURL != sandboxAPIBaseURL {
		t.Fatalf("expected sandbox defaults, got %+v", cfg.QBO)
	}
	if cfg.QBO.RedirectURL != "http://localhost:8080/auth/qbo/callback" {
		t.Fatalf("unexpected redirect url: %q", cfg.QBO.RedirectURL)
	}
	if cfg.QBO.Timeout != 15*time.Second || cfg.QBO.MinorVersion != "75" {
		t.Fatalf("unexpected client defaults: %+v", cfg.QBO)
	}
	if !cfg.Observability.PrometheusEnabled {
		t.Fatal("expected prometheus endpoint enabled by default")
	}
}

func TestLoadRequiresSecretsOutsideLocal(t *testing.T) {
	t.Setenv("QUOTERECON_ENV", "production")
	t.Setenv("QUOTERECON_SESSION_SECRET", "")
	t.Setenv("QBO_CLIENT_ID", "id")
	t.Setenv("QBO_CLIENT_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing session secret in production")
	}

	t.Setenv("QUOTERECON_SESSION_SECRET", "s3cret")
	t.Setenv("QBO_CLIENT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing client secret in production")
	}
}

func TestLoadForToolAllowsMissingSecretsOutsideLocal(t *testing.T) {
	t.Setenv("QUOTERECON_ENV", "production")
	t.Setenv("QUOTERECON_SESSION_SECRET", "")
	t.Setenv("QBO_CLIENT_ID", "")

	cfg, err := LoadForTool()
	if err != nil {
		t.Fatalf("expected no error for tool config load, got %v", err)
	}
	if cfg.Auth.SessionSecret != "" {
		t.Fatalf("expected empty session secret for tool load, got %q", cfg.Auth.SessionSecret)
	}
}

func TestLoadSelectsProductionAPIHost(t *testing.T) {
	t.Setenv("QUOTERECON_ENV", "dev")
	t.Setenv("QBO_ENVIRONMENT", "Production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.IsProductionRealm() || cfg.QBO.APIBaseURL != productionAPIBaseURL {
		t.Fatalf("expected production api host, got %+v", cfg.QBO)
	}

	t.Setenv("QBO_API_BASE_URL", "http://localhost:9999/")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.QBO.APIBaseURL != "http://localhost:9999" {
		t.Fatalf("expected override without trailing slash, got %q", cfg.QBO.APIBaseURL)
	}
}

func TestLoadRejectsUnknownQBOEnvironment(t *testing.T) {
	t.Setenv("QUOTERECON_ENV", "dev")
	t.Setenv("QBO_ENVIRONMENT", "staging")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown QBO environment")
	}
}

func TestLoadParsesOTLPHeadersAndMetricsConsole(t *testing.T) {
	t.Setenv("QUOTERECON_ENV", "dev")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "authorization=Bearer common,x-org=abc,broken")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_HEADERS", "x-trace=trace-only")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_HEADERS", "x-metric=metric-only,x-org=override")
	t.Setenv("QUOTERECON_OTEL_METRICS_CONSOLE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Observability.Enabled || !cfg.Observability.MetricsConsole {
		t.Fatal("expected observability enabled when console metrics is true")
	}
	if cfg.Observability.OTLPTraceHeaders["authorization"] != "Bearer common" || cfg.Observability.OTLPTraceHeaders["x-trace"] != "trace-only" {
		t.Fatalf("unexpected trace headers: %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if cfg.Observability.OTLPMetricHeaders["x-org"] != "override" || cfg.Observability.OTLPMetricHeaders["x-metric"] != "metric-only" {
		t.Fatalf("unexpected metric headers: %#v", cfg.Observability.OTLPMetricHeaders)
	}
	if _, ok := cfg.Observability.OTLPTraceHeaders["broken"]; ok {
		t.Fatal("malformed header entry must be dropped")
	}
}
