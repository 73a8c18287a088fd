package db

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/fr0stylo/quoterecon/internal/db/queries"
	"github.com/fr0stylo/quoterecon/internal/observability"
)

const maxSamplesPerQuery = 256

// QueryLatency summarizes recent samples for one query.
type QueryLatency struct {
	Name  string
	Count int
	P50   time.Duration
	P95   time.Duration
	Max   time.Duration
}

type queryLatencyTracker struct {
	mu        sync.Mutex
	samples   map[string][]time.Duration
	histogram metric.Float64Histogram
	errors    metric.Int64Counter
}

func newQueryLatencyTracker() *queryLatencyTracker {
	meter := otel.Meter("github.com/fr0stylo/quoterecon/internal/db")
	histogram, _ := meter.Float64Histogram(
		"quoterecon.db.query.duration",
		metric.WithUnit("ms"),
		metric.WithDescription("SQLite query latency by sqlc query name"),
	)
	errCounter, _ := meter.Int64Counter(
		"quoterecon.db.query.errors",
		metric.WithDescription("SQLite queries that returned an error, excluding no-rows lookups"),
	)
	return &queryLatencyTracker{samples: make(map[string][]time.Duration), histogram: histogram, errors: errCounter}
}

func (t *queryLatencyTracker) observe(ctx context.Context, name string, duration time.Duration, err error) {
	if t == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("query", name))
	if t.histogram != nil {
		t.histogram.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) && t.errors != nil {
		t.errors.Add(ctx, 1, attrs)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	window := append(t.samples[name], duration)
	if len(window) > maxSamplesPerQuery {
		window = window[len(window)-maxSamplesPerQuery:]
	}
	t.samples[name] = window
}

func (t *queryLatencyTracker) snapshot() []QueryLatency {
	if t == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	stats := make([]QueryLatency, 0, len(t.samples))
	for name, durations := range t.samples {
		if len(durations) == 0 {
			continue
		}
		sorted := slices.Clone(durations)
		slices.Sort(sorted)

		stats = append(stats, QueryLatency{
			Name:  name,
			Count: len(sorted),
			P50:   sorted[(len(sorted)-1)/2],
			P95:   sorted[int(float64(len(sorted)-1)*0.95)],
			Max:   sorted[len(sorted)-1],
		})
	}

	slices.SortFunc(stats, func(a, b QueryLatency) int {
		if c := cmp.Compare(b.P95, a.P95); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})

	return stats
}

// instrumentedDBTX records a span and a latency sample per sqlc query.
type instrumentedDBTX struct {
	inner   queries.DBTX
	tracker *queryLatencyTracker
}

func newInstrumentedDBTX(inner queries.DBTX, tracker *queryLatencyTracker) queries.DBTX {
	if tracker == nil {
		return inner
	}
	return &instrumentedDBTX{inner: inner, tracker: tracker}
}

func (d *instrumentedDBTX) track(ctx context.Context, query, operation string, run func(context.Context) error) error {
	name := queryName(query)
	ctx, span := observability.StartDBSpan(ctx, name, operation)
	defer span.End()

	start := time.Now()
	err := run(ctx)
	d.tracker.observe(ctx, name, time.Since(start), err)
	span.RecordError(err)
	return err
}

func (d *instrumentedDBTX) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	var result sql.Result
	err := d.track(ctx, query, "exec", func(ctx context.Context) (err error) {
		result, err = d.inner.ExecContext(ctx, query, args...)
		return err
	})
	return result, err
}

func (d *instrumentedDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	var stmt *sql.Stmt
	err := d.track(ctx, query, "prepare", func(ctx context.Context) (err error) {
		stmt, err = d.inner.PrepareContext(ctx, query)
		return err
	})
	return stmt, err
}

func (d *instrumentedDBTX) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	var rows *sql.Rows
	err := d.track(ctx, query, "query", func(ctx context.Context) (err error) {
		rows, err = d.inner.QueryContext(ctx, query, args...)
		return err
	})
	return rows, err
}

// QueryRowContext defers errors to Scan, so only latency is recorded here.
func (d *instrumentedDBTX) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	var row *sql.Row
	_ = d.track(ctx, query, "query_row", func(ctx context.Context) error {
		row = d.inner.QueryRowContext(ctx, query, args...)
		return nil
	})
	return row
}

// queryName extracts the sqlc query name from its "-- name: X :kind" header.
func queryName(query string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(query), "\n")
	rest, ok := strings.CutPrefix(strings.TrimSpace(first), "-- name:")
	if !ok {
		return "unknown"
	}
	parts := strings.Fields(rest)
	if len(parts) == 0 {
		return "unknown"
	}
	return parts[0]
}
