package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	dbTracerName        = "quoterecon/db"
	reconcileTracerName = "quoterecon/reconcile"
)

type contextKey string

const (
	realmIDKey   contextKey = "observability.realm_id"
	invoiceIDKey contextKey = "observability.invoice_id"
	requestIDKey contextKey = "observability.request_id"
	routeKey     contextKey = "observability.route"
)

// Span is the application-level tracing span contract.
type Span interface {
	End()
	RecordError(error)
}

type otelSpan struct {
	inner trace.Span
}

// StartDBSpan starts a database tracing span for one query operation.
func StartDBSpan(ctx context.Context, queryName, operation string) (context.Context, Span) {
	queryName = strings.TrimSpace(queryName)
	if queryName == "" {
		queryName = "unknown"
	}
	attrs := []attribute.KeyValue{
		attribute.String("db.system.name", "sqlite"),
		attribute.String("db.query_name", queryName),
		attribute.String("db.operation", strings.TrimSpace(operation)),
	}
	if realmID, ok := RealmIDFromContext(ctx); ok {
		attrs = append(attrs, attribute.String("quoterecon.realm_id", realmID))
	}

	ctx, span := otel.Tracer(dbTracerName).Start(ctx, "db."+queryName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)

	return ctx, otelSpan{inner: span}
}

// StartEntitySpan starts a span covering reconciliation of one notification entity.
func StartEntitySpan(ctx context.Context, entityType, entityID string) (context.Context, Span) {
	ctx, span := otel.Tracer(reconcileTracerName).Start(ctx, "reconcile."+strings.ToLower(entityType),
		trace.WithAttributes(
			attribute.String("quoterecon.entity_type", entityType),
			attribute.String("quoterecon.entity_id", entityID),
		),
	)
	return ctx, otelSpan{inner: span}
}

// WithEntityIdentity enriches context and current span with realm/invoice attributes.
func WithEntityIdentity(ctx context.Context, realmID, invoiceID string) context.Context {
	realmID = strings.TrimSpace(realmID)
	invoiceID = strings.TrimSpace(invoiceID)
	if realmID != "" {
		ctx = context.WithValue(ctx, realmIDKey, realmID)
	}
	if invoiceID != "" {
		ctx = context.WithValue(ctx, invoiceIDKey, invoiceID)
	}
	setSpanAttributes(ctx,
		attribute.String("quoterecon.realm_id", realmID),
		attribute.String("quoterecon.invoice_id", invoiceID),
	)
	return ctx
}

// WithRequestMetadata enriches context and current span with request metadata.
func WithRequestMetadata(ctx context.Context, requestID, route string) context.Context {
	requestID = strings.TrimSpace(requestID)
	route = strings.TrimSpace(route)
	if requestID != "" {
		ctx = context.WithValue(ctx, requestIDKey, requestID)
	}
	if route != "" {
		ctx = context.WithValue(ctx, routeKey, route)
	}
	setSpanAttributes(ctx,
		attribute.String("request.id", requestID),
		attribute.String("http.route", route),
	)
	return ctx
}

// RealmIDFromContext extracts the accounting realm id.
func RealmIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, realmIDKey)
}

// InvoiceIDFromContext extracts the invoice under reconciliation.
func InvoiceIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, invoiceIDKey)
}

// RequestIDFromContext extracts request id.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, requestIDKey)
}

// RouteFromContext extracts normalized route path.
func RouteFromContext(ctx context.Context) (string, bool) {
	return stringFromContext(ctx, routeKey)
}

func stringFromContext(ctx context.Context, key contextKey) (string, bool) {
	value, ok := ctx.Value(key).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

// setSpanAttributes skips attributes with empty string values.
func setSpanAttributes(ctx context.Context, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil {
		return
	}
	kept := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Value.AsString() == "" {
			continue
		}
		kept = append(kept, attr)
	}
	if len(kept) > 0 {
		span.SetAttributes(kept...)
	}
}

func (s otelSpan) End() {
	if s.inner == nil {
		return
	}
	s.inner.End()
}

func (s otelSpan) RecordError(err error) {
	if s.inner == nil || err == nil {
		return
	}
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}
