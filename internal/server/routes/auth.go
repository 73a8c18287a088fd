package routes

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
	"github.com/fr0stylo/quoterecon/internal/observability"
)

const (
	authSessionName     = "quoterecon-auth"
	authSessionStateKey = "oauthState"
)

// AuthConfig configures the session store used by the OAuth connect flow.
type AuthConfig struct {
	SessionKey    string
	SecureCookies bool
}

// OAuthFlow is the authorization-code side of the accounting provider.
type OAuthFlow interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (ports.TokenGrant, error)
}

// CredentialSaver persists the initial credential record.
type CredentialSaver interface {
	Save(ctx context.Context, realmID string, grant ports.TokenGrant) error
}

// AuthRoutes registers the accounting connect endpoints.
type AuthRoutes struct {
	store       sessions.Store
	oauth       OAuthFlow
	credentials CredentialSaver
	log         *slog.Logger
}

// NewSessionStore builds the cookie store shared by auth routes.
func NewSessionStore(config AuthConfig) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(config.SessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int((15 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   config.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// NewAuthRoutes constructs auth routes.
func NewAuthRoutes(store sessions.Store, oauth OAuthFlow, credentials CredentialSaver, log *slog.Logger) *AuthRoutes {
	if log == nil {
		log = slog.Default()
	}
	return &AuthRoutes{store: store, oauth: oauth, credentials: credentials, log: log}
}

type connectResponse struct {
	Status  string    `json:"status"`
	RealmID string    `json:"realmId"`
	Expires time.Time `json:"expiresAt"`
}

// RegisterRoutes registers authentication routes on the server.
func (a *AuthRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/auth/qbo/connect", a.handleConnect)
	s.GET("/auth/qbo/callback", a.handleCallback)
}

func (a *AuthRoutes) handleConnect(c echo.Context) error {
	state, err := newState()
	if err != nil {
		return err
	}
	session, err := a.session(c)
	if err != nil {
		return err
	}
	session.Values[authSessionStateKey] = state
	if err := session.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, a.oauth.AuthCodeURL(state))
}

func (a *AuthRoutes) handleCallback(c echo.Context) error {
	ctx := c.Request().Context()
	if providerErr := strings.TrimSpace(c.QueryParam("error")); providerErr != "" {
		return echo.NewHTTPError(http.StatusBadRequest, "authorization denied: "+providerErr)
	}

	session, err := a.session(c)
	if err != nil {
		return err
	}
	expected, _ := session.Values[authSessionStateKey].(string)
	state := c.QueryParam("state")
	if expected == "" || state != expected {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid oauth state")
	}
	delete(session.Values, authSessionStateKey)

	code := strings.TrimSpace(c.QueryParam("code"))
	realmID := strings.TrimSpace(c.QueryParam("realmId"))
	if code == "" || realmID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code and realmId are required")
	}
	ctx = observability.WithEntityIdentity(ctx, realmID, "")

	grant, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		a.log.WarnContext(ctx, "authorization code exchange failed", "error", err)
		if errors.Is(err, ports.ErrAuth) {
			return echo.NewHTTPError(http.StatusUnauthorized, "authorization code rejected").SetInternal(err)
		}
		return echo.NewHTTPError(http.StatusBadGateway, "token endpoint unavailable").SetInternal(err)
	}
	if err := a.credentials.Save(ctx, realmID, grant); err != nil {
		a.log.ErrorContext(ctx, "credential save failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to save credentials").SetInternal(err)
	}
	if err := session.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	a.log.InfoContext(ctx, "accounting realm connected")
	return c.JSON(http.StatusOK, connectResponse{Status: "connected", RealmID: realmID, Expires: grant.ExpiresAt})
}

// session returns the auth session, discarding a cookie signed with an old key.
func (a *AuthRoutes) session(c echo.Context) (*sessions.Session, error) {
	session, err := a.store.Get(c.Request(), authSessionName)
	if err != nil {
		if isInvalidSecureCookieError(err) {
			return session, nil
		}
		return nil, err
	}
	return session, nil
}

func isInvalidSecureCookieError(err error) bool {
	var cookieErr securecookie.Error
	return errors.As(err, &cookieErr) && cookieErr.IsDecode()
}

func newState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
