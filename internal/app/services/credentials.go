package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
)

const refreshFlightKey = "credentials"

// CredentialService reads the persisted credentials and serializes refreshes.
type CredentialService struct {
	repo      ports.CredentialRepository
	refresher ports.TokenRefresher
	log       *slog.Logger
	flight    singleflight.Group
	metrics   reconcileMetrics
}

// NewCredentialService constructs a credential service.
func NewCredentialService(repo ports.CredentialRepository, refresher ports.TokenRefresher, log *slog.Logger) *CredentialService {
	if log == nil {
		log = slog.Default()
	}
	return &CredentialService{
		repo:      repo,
		refresher: refresher,
		log:       log,
		metrics:   newReconcileMetrics(),
	}
}

// Load returns the current credentials. Every failure matches ports.ErrStorage.
func (s *CredentialService) Load(ctx context.Context) (ports.Credentials, error) {
	creds, err := s.repo.LoadCredentials(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrStorage) {
			return ports.Credentials{}, err
		}
		return ports.Credentials{}, fmt.Errorf("%w: %v", ports.ErrStorage, err)
	}
	return creds, nil
}

// Save replaces the credential record, used by the connect flow.
func (s *CredentialService) Save(ctx context.Context, realmID string, grant ports.TokenGrant) error {
	realmID = strings.TrimSpace(realmID)
	if realmID == "" {
		return fmt.Errorf("%w: realm id is required", ports.ErrValidation)
	}
	return s.repo.SaveCredentials(ctx, ports.Credentials{
		RealmID:      realmID,
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		TokenType:    grant.TokenType,
		ExpiresAt:    grant.ExpiresAt,
	})
}

// Refresh replaces rejectedAccessToken by exchanging refreshToken and
// persisting the result.
//
// At most one exchange is in flight per process; concurrent callers share its
// outcome. When the stored access token no longer matches the rejected one,
// or the stored refresh token has rotated, another caller already refreshed
// and the stored access token is returned without a second exchange.
func (s *CredentialService) Refresh(ctx context.Context, rejectedAccessToken, refreshToken string) (string, error) {
	value, err, shared := s.flight.Do(refreshFlightKey, func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx), strings.TrimSpace(rejectedAccessToken), strings.TrimSpace(refreshToken))
	})
	if shared {
		s.metrics.recordRefresh(ctx, "shared")
	}
	if err != nil {
		return "", err
	}
	return value.(string), nil
}

func (s *CredentialService) refresh(ctx context.Context, rejected, presented string) (string, error) {
	current, err := s.Load(ctx)
	if err != nil {
		s.metrics.recordRefresh(ctx, "storage_failed")
		return "", err
	}
	if rejected != "" && current.AccessToken != "" && current.AccessToken != rejected {
		s.log.Info("access token already refreshed", "realm_id", current.RealmID)
		s.metrics.recordRefresh(ctx, "already_refreshed")
		return current.AccessToken, nil
	}
	if presented != "" && current.RefreshToken != "" && current.RefreshToken != presented {
		s.log.Info("credentials already rotated", "realm_id", current.RealmID)
		s.metrics.recordRefresh(ctx, "rotated")
		return current.AccessToken, nil
	}
	if presented == "" {
		presented = current.RefreshToken
	}

	grant, err := s.refresher.RefreshToken(ctx, presented)
	if err != nil {
		s.log.Error("token refresh rejected", "realm_id", current.RealmID, "error", err)
		s.metrics.recordRefresh(ctx, "rejected")
		if errors.Is(err, ports.ErrAuth) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ports.ErrAuth, err)
	}
	if strings.TrimSpace(grant.AccessToken) == "" {
		s.metrics.recordRefresh(ctx, "rejected")
		return "", fmt.Errorf("%w: token endpoint returned no access token", ports.ErrAuth)
	}

	if err := s.repo.UpdateTokens(ctx, grant.AccessToken, grant.RefreshToken, grant.ExpiresAt); err != nil {
		s.metrics.recordRefresh(ctx, "storage_failed")
		if errors.Is(err, ports.ErrStorage) {
			return "", err
		}
		return "", fmt.Errorf("%w: persist refreshed tokens: %v", ports.ErrStorage, err)
	}

	s.log.Info("access token refreshed",
		"realm_id", current.RealmID,
		"refresh_token_rotated", grant.RefreshToken != "" && grant.RefreshToken != presented,
		"expires_at", grant.ExpiresAt,
	)
	s.metrics.recordRefresh(ctx, "exchanged")
	return grant.AccessToken, nil
}

var _ ports.CredentialProvider = (*CredentialService)(nil)
