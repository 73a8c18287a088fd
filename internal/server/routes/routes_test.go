package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fr0stylo/quoterecon/internal/server"
)

func newTestEcho(registers ...interface{ RegisterRoutes(*echo.Echo) }) *echo.Echo {
	e := echo.New()
	e.Validator = server.NewValidator()
	for _, r := range registers {
		r.RegisterRoutes(e)
	}
	return e
}

func doRequest(e *echo.Echo, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
