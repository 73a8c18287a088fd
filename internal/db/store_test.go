package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fr0stylo/quoterecon/internal/db/queries"
)

func openTestDatabase(t *testing.T) *Database {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "testdb"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDatabase(t)
	boom := errors.New("boom")

	err := database.WithTx(ctx, func(q *queries.Queries) error {
		if _, err := q.UpsertCustomerByEmail(ctx, queries.UpsertCustomerByEmailParams{Name: "Acme", Email: "ops@acme.test"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	_, err = database.GetCustomerByName(ctx, "Acme")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected rolled back customer, got %v", err)
	}
}

func TestWithTxCommits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDatabase(t)

	err := database.WithTx(ctx, func(q *queries.Queries) error {
		_, err := q.UpsertCustomerByEmail(ctx, queries.UpsertCustomerByEmailParams{Name: "Acme", Email: "ops@acme.test"})
		return err
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	customer, err := database.GetCustomerByName(ctx, "Acme")
	if err != nil {
		t.Fatalf("GetCustomerByName: %v", err)
	}
	if customer.Email != "ops@acme.test" {
		t.Fatalf("unexpected customer: %+v", customer)
	}
	if len(database.QueryLatencyStats()) == 0 {
		t.Fatal("expected latency samples after queries")
	}
}

func TestUpdateCredentialTokensKeepsRefreshTokenWhenEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDatabase(t)

	if err := database.SaveCredentials(ctx, queries.SaveCredentialsParams{
		RealmID:      "realm-1",
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "bearer",
	}); err != nil {
		t.Fatalf("save credentials: %v", err)
	}

	affected, err := database.UpdateCredentialTokens(ctx, queries.UpdateCredentialTokensParams{AccessToken: "access-2"})
	if err != nil {
		t.Fatalf("update tokens: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected one row updated, got %d", affected)
	}

	row, err := database.GetCredentials(ctx)
	if err != nil {
		t.Fatalf("get credentials: %v", err)
	}
	if row.AccessToken != "access-2" || row.RefreshToken != "refresh-1" || row.RealmID != "realm-1" {
		t.Fatalf("unexpected credentials after update: %+v", row)
	}
}

func TestQueryName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"-- name: GetCredentials :one\nSELECT 1": "GetCredentials",
		"\n  -- name: ListQuoteProducts :many\n":  "ListQuoteProducts",
		"SELECT 1":                               "unknown",
		"-- name:":                               "unknown",
	}
	for query, want := range cases {
		if got := queryName(query); got != want {
			t.Fatalf("queryName(%q) = %q, want %q", query, got, want)
		}
	}
}

func TestNewReopensMigratedDatabase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reopen")
	first, err := New(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := first.UpsertCustomerByEmail(ctx, queries.UpsertCustomerByEmailParams{Name: "Acme", Email: "ops@acme.test"}); err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	second, err := New(path)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })
	if err := second.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if _, err := second.GetCustomerByName(ctx, "Acme"); err != nil {
		t.Fatalf("customer lost across reopen: %v", err)
	}
}
