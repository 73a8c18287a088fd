package ports

import (
	"context"
	"time"
)

// Credentials is the persisted accounting API authorization.
type Credentials struct {
	RealmID      string
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresAt    time.Time
}

// CredentialRepository persists the single credential record.
type CredentialRepository interface {
	// LoadCredentials returns ErrStorage when no usable record exists.
	LoadCredentials(ctx context.Context) (Credentials, error)
	// SaveCredentials replaces the whole record.
	SaveCredentials(ctx context.Context, creds Credentials) error
	// UpdateTokens replaces the access token, and the refresh token only when
	// refreshToken is non-empty. All other fields are preserved.
	UpdateTokens(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time) error
}

// TokenGrant is the result of a token endpoint exchange.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresAt    time.Time
}

// TokenRefresher exchanges a refresh token at the provider token endpoint.
type TokenRefresher interface {
	RefreshToken(ctx context.Context, refreshToken string) (TokenGrant, error)
}

// CredentialProvider is what the reconciliation engine needs from the
// credential store.
type CredentialProvider interface {
	Load(ctx context.Context) (Credentials, error)
	// Refresh returns a usable access token after rejectedAccessToken was
	// refused, exchanging refreshToken only if no one else already has.
	Refresh(ctx context.Context, rejectedAccessToken, refreshToken string) (string, error)
}
