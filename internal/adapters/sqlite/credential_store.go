package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
	"github.com/fr0stylo/quoterecon/internal/db/queries"
)

// CredentialStore persists the single accounting credential record.
type CredentialStore struct {
	db credentialDatabase
}

// NewCredentialStore creates a credential store over an open database.
func NewCredentialStore(database credentialDatabase) *CredentialStore {
	return &CredentialStore{db: database}
}

// LoadCredentials returns ports.ErrStorage when the record is absent, unreadable,
// or missing the realm or access token.
func (s *CredentialStore) LoadCredentials(ctx context.Context) (ports.Credentials, error) {
	row, err := s.db.GetCredentials(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.Credentials{}, fmt.Errorf("%w: no credential record", ports.ErrStorage)
	}
	if err != nil {
		return ports.Credentials{}, fmt.Errorf("%w: %v", ports.ErrStorage, err)
	}

	creds := ports.Credentials{
		RealmID:      strings.TrimSpace(row.RealmID),
		AccessToken:  strings.TrimSpace(row.AccessToken),
		RefreshToken: strings.TrimSpace(row.RefreshToken),
		TokenType:    row.TokenType,
	}
	if creds.RealmID == "" {
		return ports.Credentials{}, fmt.Errorf("%w: credential record has no realm", ports.ErrStorage)
	}
	if creds.AccessToken == "" {
		return ports.Credentials{}, fmt.Errorf("%w: credential record has no access token", ports.ErrStorage)
	}
	if row.ExpiresAt.Valid && row.ExpiresAt.String != "" {
		expiresAt, err := time.Parse(time.RFC3339, row.ExpiresAt.String)
		if err != nil {
			return ports.Credentials{}, fmt.Errorf("%w: invalid expiry %q", ports.ErrStorage, row.ExpiresAt.String)
		}
		creds.ExpiresAt = expiresAt
	}
	return creds, nil
}

func (s *CredentialStore) SaveCredentials(ctx context.Context, creds ports.Credentials) error {
	tokenType := strings.TrimSpace(creds.TokenType)
	if tokenType == "" {
		tokenType = "bearer"
	}
	if err := s.db.SaveCredentials(ctx, queries.SaveCredentialsParams{
		RealmID:      strings.TrimSpace(creds.RealmID),
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    tokenType,
		ExpiresAt:    nullTime(creds.ExpiresAt),
	}); err != nil {
		return fmt.Errorf("%w: save credentials: %v", ports.ErrStorage, err)
	}
	return nil
}

// UpdateTokens keeps the stored refresh token when refreshToken is empty.
func (s *CredentialStore) UpdateTokens(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time) error {
	affected, err := s.db.UpdateCredentialTokens(ctx, queries.UpdateCredentialTokensParams{
		AccessToken:  accessToken,
		RefreshToken: strings.TrimSpace(refreshToken),
		ExpiresAt:    nullTime(expiresAt),
	})
	if err != nil {
		return fmt.Errorf("%w: update tokens: %v", ports.ErrStorage, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: no credential record to update", ports.ErrStorage)
	}
	return nil
}

func nullTime(value time.Time) sql.NullString {
	if value.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: value.UTC().Format(time.RFC3339), Valid: true}
}

var _ ports.CredentialRepository = (*CredentialStore)(nil)
