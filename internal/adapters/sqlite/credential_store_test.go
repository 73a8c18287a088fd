package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
	"github.com/fr0stylo/quoterecon/internal/db/queries"
)

func TestCredentialStoreMissingRecordIsStorageError(t *testing.T) {
	t.Parallel()

	store := NewCredentialStore(openTestDB(t))
	if _, err := store.LoadCredentials(context.Background()); !errors.Is(err, ports.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	err := store.UpdateTokens(context.Background(), "access", "refresh", time.Time{})
	if !errors.Is(err, ports.ErrStorage) {
		t.Fatalf("expected ErrStorage on update without record, got %v", err)
	}
}

func TestCredentialStoreMalformedRecordIsStorageError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openTestDB(t)
	if err := database.SaveCredentials(ctx, queries.SaveCredentialsParams{
		RealmID:      "",
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "bearer",
	}); err != nil {
		t.Fatalf("seed credentials: %v", err)
	}

	store := NewCredentialStore(database)
	if _, err := store.LoadCredentials(ctx); !errors.Is(err, ports.ErrStorage) {
		t.Fatalf("expected ErrStorage for missing realm, got %v", err)
	}
}

func TestCredentialStoreUpdateTokensMergesRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewCredentialStore(openTestDB(t))
	initialExpiry := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	if err := store.SaveCredentials(ctx, ports.Credentials{
		RealmID:      "9130",
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresAt:    initialExpiry,
	}); err != nil {
		t.Fatalf("save credentials: %v", err)
	}

	loaded, err := store.LoadCredentials(ctx)
	if err != nil {
		t.Fatalf("load credentials: %v", err)
	}
	if loaded.TokenType != "bearer" || !loaded.ExpiresAt.Equal(initialExpiry) {
		t.Fatalf("unexpected loaded credentials: %+v", loaded)
	}

	nextExpiry := initialExpiry.Add(time.Hour)
	if err := store.UpdateTokens(ctx, "access-2", "", nextExpiry); err != nil {
		t.Fatalf("update tokens: %v", err)
	}
	loaded, err = store.LoadCredentials(ctx)
	if err != nil {
		t.Fatalf("reload credentials: %v", err)
	}
	if loaded.AccessToken != "access-2" || loaded.RefreshToken != "refresh-1" || loaded.RealmID != "9130" {
		t.Fatalf("expected refresh token kept, got %+v", loaded)
	}
	if !loaded.ExpiresAt.Equal(nextExpiry) {
		t.Fatalf("unexpected expiry: %v", loaded.ExpiresAt)
	}

	if err := store.UpdateTokens(ctx, "access-3", "refresh-2", nextExpiry); err != nil {
		t.Fatalf("rotate tokens: %v", err)
	}
	loaded, err = store.LoadCredentials(ctx)
	if err != nil {
		t.Fatalf("reload rotated credentials: %v", err)
	}
	if loaded.AccessToken != "access-3" || loaded.RefreshToken != "refresh-2" {
		t.Fatalf("expected rotated tokens, got %+v", loaded)
	}
}
