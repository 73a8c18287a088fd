package qbo

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type webhookMetrics struct {
	requests metric.Int64Counter
	accepted metric.Int64Counter
	rejected metric.Int64Counter
}

func newWebhookMetrics() webhookMetrics {
	meter := otel.Meter("github.com/fr0stylo/quoterecon/internal/webhooks/qbo")
	requests, _ := meter.Int64Counter("quoterecon.webhook.requests")
	accepted, _ := meter.Int64Counter("quoterecon.webhook.accepted")
	rejected, _ := meter.Int64Counter("quoterecon.webhook.rejected")
	return webhookMetrics{
		requests: requests,
		accepted: accepted,
		rejected: rejected,
	}
}

func (m webhookMetrics) recordRequest(ctx context.Context) {
	m.requests.Add(ctx, 1)
}

func (m webhookMetrics) recordAccepted(ctx context.Context, entities int) {
	m.accepted.Add(ctx, 1, metric.WithAttributes(attribute.Bool("has_entities", entities > 0)))
}

func (m webhookMetrics) recordRejected(ctx context.Context, reason string) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
