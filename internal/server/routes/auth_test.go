package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
)

type oauthFlowFake struct {
	code  string
	grant ports.TokenGrant
	err   error
}

func (f *oauthFlowFake) AuthCodeURL(state string) string {
	return "https://appcenter.example/connect?state=" + url.QueryEscape(state)
}

func (f *oauthFlowFake) Exchange(_ context.Context, code string) (ports.TokenGrant, error) {
	f.code = code
	if f.err != nil {
		return ports.TokenGrant{}, f.err
	}
	return f.grant, nil
}

type credentialSaverFake struct {
	realmID string
	grant   ports.TokenGrant
	saved   int
	err     error
}

func (f *credentialSaverFake) Save(_ context.Context, realmID string, grant ports.TokenGrant) error {
	if f.err != nil {
		return f.err
	}
	f.saved++
	f.realmID = realmID
	f.grant = grant
	return nil
}

func connect(t *testing.T, a *AuthRoutes) (string, []*http.Cookie) {
	t.Helper()
	e := newTestEcho(a)
	rec := doRequest(e, http.MethodGet, "/auth/qbo/connect", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("unexpected connect status: got=%d want=%d", rec.Code, http.StatusFound)
	}
	location, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse redirect: %v", err)
	}
	state := location.Query().Get("state")
	if state == "" {
		t.Fatalf("redirect missing state: %s", location)
	}
	return state, rec.Result().Cookies()
}

func TestAuthCallbackSavesCredentials(t *testing.T) {
	t.Parallel()

	expires := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)
	oauth := &oauthFlowFake{grant: ports.TokenGrant{AccessToken: "at", RefreshToken: "rt", ExpiresAt: expires}}
	saver := &credentialSaverFake{}
	routes := NewAuthRoutes(NewSessionStore(AuthConfig{SessionKey: "test-session-key"}), oauth, saver, nil)

	state, cookies := connect(t, routes)
	e := newTestEcho(routes)
	target := fmt.Sprintf("/auth/qbo/callback?code=auth-code&realmId=9130&state=%s", url.QueryEscape(state))
	rec := doRequest(e, http.MethodGet, target, "", cookies...)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	if oauth.code != "auth-code" {
		t.Fatalf("unexpected code exchanged: %q", oauth.code)
	}
	if saver.saved != 1 || saver.realmID != "9130" || saver.grant.RefreshToken != "rt" {
		t.Fatalf("unexpected saved credentials: %+v", saver)
	}
}

func TestAuthCallbackRejectsStateMismatch(t *testing.T) {
	t.Parallel()

	saver := &credentialSaverFake{}
	routes := NewAuthRoutes(NewSessionStore(AuthConfig{SessionKey: "test-session-key"}), &oauthFlowFake{}, saver, nil)

	_, cookies := connect(t, routes)
	e := newTestEcho(routes)
	rec := doRequest(e, http.MethodGet, "/auth/qbo/callback?code=c&realmId=9130&state=forged", "", cookies...)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
	if saver.saved != 0 {
		t.Fatalf("credentials should not be saved on state mismatch")
	}
}

func TestAuthCallbackRequiresSession(t *testing.T) {
	t.Parallel()

	routes := NewAuthRoutes(NewSessionStore(AuthConfig{SessionKey: "test-session-key"}), &oauthFlowFake{}, &credentialSaverFake{}, nil)
	e := newTestEcho(routes)
	rec := doRequest(e, http.MethodGet, "/auth/qbo/callback?code=c&realmId=9130&state=", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusBadRequest)
	}
}

func TestAuthCallbackMapsExchangeFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "rejected code", err: fmt.Errorf("exchange: %w", ports.ErrAuth), want: http.StatusUnauthorized},
		{name: "token endpoint down", err: &ports.UpstreamError{Op: "exchange", StatusCode: http.StatusServiceUnavailable}, want: http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			saver := &credentialSaverFake{}
			routes := NewAuthRoutes(NewSessionStore(AuthConfig{SessionKey: "test-session-key"}), &oauthFlowFake{err: tc.err}, saver, nil)

			state, cookies := connect(t, routes)
			e := newTestEcho(routes)
			rec := doRequest(e, http.MethodGet, "/auth/qbo/callback?code=c&realmId=9130&state="+url.QueryEscape(state), "", cookies...)
			if rec.Code != tc.want {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, tc.want)
			}
			if saver.saved != 0 {
				t.Fatalf("credentials should not be saved after a failed exchange")
			}
		})
	}
}

func TestAuthCallbackMapsSaveFailureTo500(t *testing.T) {
	t.Parallel()

	saver := &credentialSaverFake{err: errors.New("disk full")}
	routes := NewAuthRoutes(NewSessionStore(AuthConfig{SessionKey: "test-session-key"}), &oauthFlowFake{}, saver, nil)

	state, cookies := connect(t, routes)
	e := newTestEcho(routes)
	rec := doRequest(e, http.MethodGet, "/auth/qbo/callback?code=c&realmId=9130&state="+url.QueryEscape(state), "", cookies...)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusInternalServerError)
	}
}
