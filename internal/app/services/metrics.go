package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type reconcileMetrics struct {
	notifications metric.Int64Counter
	entities      metric.Int64Counter
	lines         metric.Int64Counter
	refreshes     metric.Int64Counter
}

func newReconcileMetrics() reconcileMetrics {
	meter := otel.Meter("github.com/fr0stylo/quoterecon/internal/app/services")
	notifications, _ := meter.Int64Counter("quoterecon.reconcile.notifications")
	entities, _ := meter.Int64Counter("quoterecon.reconcile.entities")
	lines, _ := meter.Int64Counter("quoterecon.reconcile.lines")
	refreshes, _ := meter.Int64Counter("quoterecon.credentials.refreshes")
	return reconcileMetrics{
		notifications: notifications,
		entities:      entities,
		lines:         lines,
		refreshes:     refreshes,
	}
}

func (m reconcileMetrics) recordNotification(ctx context.Context, result string) {
	m.notifications.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (m reconcileMetrics) recordEntity(ctx context.Context, outcome Outcome) {
	m.entities.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
}

func (m reconcileMetrics) recordLines(ctx context.Context, matched, unmatched int) {
	if matched > 0 {
		m.lines.Add(ctx, int64(matched), metric.WithAttributes(attribute.String("result", "matched")))
	}
	if unmatched > 0 {
		m.lines.Add(ctx, int64(unmatched), metric.WithAttributes(attribute.String("result", "unmatched")))
	}
}

func (m reconcileMetrics) recordRefresh(ctx context.Context, result string) {
	m.refreshes.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
