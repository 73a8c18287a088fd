package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	_ "modernc.org/sqlite"

	"github.com/fr0stylo/quoterecon/internal/adapters/qbo"
	"github.com/fr0stylo/quoterecon/internal/adapters/sqlite"
	"github.com/fr0stylo/quoterecon/internal/app/services"
	"github.com/fr0stylo/quoterecon/internal/config"
	"github.com/fr0stylo/quoterecon/internal/db"
	"github.com/fr0stylo/quoterecon/internal/observability"
	"github.com/fr0stylo/quoterecon/internal/server"
	"github.com/fr0stylo/quoterecon/internal/server/routes"
	qbowebhook "github.com/fr0stylo/quoterecon/internal/webhooks/qbo"
)

func Run() error {
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	log := slog.New(observability.WrapSlogHandler(baseHandler))
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.IsLocalDevelopment() && cfg.Auth.SessionSecret == "quoterecon-local-dev" {
		slog.Warn("QUOTERECON_SESSION_SECRET not set, using local development fallback")
	}
	if cfg.QBO.VerifierToken == "" {
		slog.Warn("QBO_WEBHOOK_VERIFIER_TOKEN not set, webhook signatures are not verified")
	}

	var registry *prometheus.Registry
	if cfg.Observability.PrometheusEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	shutdownTelemetry, err := observability.SetupOpenTelemetry(context.Background(), log, observability.OpenTelemetryConfig{
		Enabled:            cfg.Observability.Enabled,
		OTLPEndpoint:       cfg.Observability.OTLPEndpoint,
		OTLPTraceHeaders:   cfg.Observability.OTLPTraceHeaders,
		OTLPMetricHeaders:  cfg.Observability.OTLPMetricHeaders,
		ServiceName:        cfg.Observability.ServiceName,
		ServiceVer:         cfg.Observability.ServiceVer,
		SamplingRatio:      cfg.Observability.SamplingRatio,
		MetricsConsole:     cfg.Observability.MetricsConsole,
		PrometheusRegistry: registry,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			slog.Error("Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	if cfg.Database.LogTiming {
		go logDBLatencyStats(log, database)
	}

	quotes := sqlite.NewQuoteStore(database)
	oauth := qbo.NewOAuth(qbo.OAuthConfig{
		ClientID:     cfg.QBO.ClientID,
		ClientSecret: cfg.QBO.ClientSecret,
		RedirectURL:  cfg.QBO.RedirectURL,
		TokenURL:     cfg.QBO.TokenURL,
		AuthURL:      cfg.QBO.AuthURL,
		Timeout:      cfg.QBO.Timeout,
	})
	invoices := qbo.NewClient(qbo.ClientConfig{
		BaseURL:      cfg.QBO.APIBaseURL,
		MinorVersion: cfg.QBO.MinorVersion,
		Timeout:      cfg.QBO.Timeout,
	})
	credentials := services.NewCredentialService(sqlite.NewCredentialStore(database), oauth, log)
	reconciler := services.NewReconcileService(credentials, invoices, quotes, log)
	ingest := services.NewNotificationIngestService(reconciler, cfg.QBO.VerifierToken)

	srv := server.New(log, cfg.Observability.ServiceName)
	srv.RegisterRouter(routes.NewHealthRoutes(database, gathererOrNil(registry)))
	srv.RegisterRouter(routes.NewWebhookRoutes(qbowebhook.NewHandler(ingest, log)))
	srv.RegisterRouter(routes.NewQuoteRoutes(quotes, log))
	srv.RegisterRouter(routes.NewAuthRoutes(routes.NewSessionStore(routes.AuthConfig{
		SessionKey:    cfg.Auth.SessionSecret,
		SecureCookies: cfg.Auth.SecureCookie,
	}), oauth, credentials, log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Server.Port, "environment", cfg.QBO.Environment)
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func main() {
	if err := Run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// gathererOrNil keeps a nil registry from becoming a non-nil interface.
func gathererOrNil(registry *prometheus.Registry) prometheus.Gatherer {
	if registry == nil {
		return nil
	}
	return registry
}

func logDBLatencyStats(log *slog.Logger, database *db.Database) {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		stats := database.QueryLatencyStats()
		limit := min(len(stats), 5)
		for index := 0; index < limit; index++ {
			entry := stats[index]
			log.Info("db_query_latency",
				"query", entry.Name,
				"count", entry.Count,
				"p50_ms", entry.P50.Milliseconds(),
				"p95_ms", entry.P95.Milliseconds(),
				"max_ms", entry.Max.Milliseconds(),
			)
		}
	}
}
