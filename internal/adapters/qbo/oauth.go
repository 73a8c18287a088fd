package qbo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
)

const (
	// TokenURL is the OAuth2 token endpoint.
	TokenURL = "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer"
	// AuthURL is the OAuth2 consent endpoint.
	AuthURL = "https://appcenter.intuit.com/connect/oauth2"
	// AccountingScope grants read/write access to accounting entities.
	AccountingScope = "com.intuit.quickbooks.accounting"
)

// OAuthConfig configures token exchanges with the identity provider.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokenURL     string
	AuthURL      string
	Timeout      time.Duration
	HTTPClient   *http.Client
}

// OAuth performs authorization code and refresh token exchanges.
type OAuth struct {
	config     *oauth2.Config
	httpClient *http.Client
}

// NewOAuth constructs the token exchanger. Client credentials are always sent
// as HTTP Basic authentication.
func NewOAuth(cfg OAuthConfig) *OAuth {
	tokenURL := strings.TrimSpace(cfg.TokenURL)
	if tokenURL == "" {
		tokenURL = TokenURL
	}
	authURL := strings.TrimSpace(cfg.AuthURL)
	if authURL == "" {
		authURL = AuthURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &OAuth{
		config: &oauth2.Config{
			ClientID:     strings.TrimSpace(cfg.ClientID),
			ClientSecret: strings.TrimSpace(cfg.ClientSecret),
			RedirectURL:  strings.TrimSpace(cfg.RedirectURL),
			Scopes:       []string{AccountingScope},
			Endpoint: oauth2.Endpoint{
				AuthURL:   authURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		httpClient: httpClient,
	}
}

// AuthCodeURL returns the consent page URL carrying state.
func (o *OAuth) AuthCodeURL(state string) string {
	return o.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for the first token pair.
func (o *OAuth) Exchange(ctx context.Context, code string) (ports.TokenGrant, error) {
	token, err := o.config.Exchange(o.withClient(ctx), strings.TrimSpace(code))
	if err != nil {
		return ports.TokenGrant{}, mapTokenError("exchange authorization code", err)
	}
	return grantFromToken(token), nil
}

// RefreshToken performs the refresh_token grant. Rejections by the token
// endpoint match ports.ErrAuth.
func (o *OAuth) RefreshToken(ctx context.Context, refreshToken string) (ports.TokenGrant, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return ports.TokenGrant{}, fmt.Errorf("%w: refresh token is empty", ports.ErrAuth)
	}
	source := o.config.TokenSource(o.withClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return ports.TokenGrant{}, mapTokenError("refresh access token", err)
	}
	return grantFromToken(token), nil
}

func (o *OAuth) withClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
}

func grantFromToken(token *oauth2.Token) ports.TokenGrant {
	return ports.TokenGrant{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		ExpiresAt:    token.Expiry,
	}
}

func mapTokenError(op string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		status := 0
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}
		if status >= 500 {
			return &ports.UpstreamError{Op: op, StatusCode: status, Body: strings.TrimSpace(string(retrieveErr.Body))}
		}
		detail := retrieveErr.ErrorCode
		if detail == "" {
			detail = strings.TrimSpace(string(retrieveErr.Body))
		}
		return fmt.Errorf("%w: %s: status %d: %s", ports.ErrAuth, op, status, detail)
	}
	return &ports.UpstreamError{Op: op, Err: err}
}

var _ ports.TokenRefresher = (*OAuth)(nil)
