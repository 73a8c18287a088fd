package routes

import (
	"github.com/labstack/echo/v4"

	qbowebhook "github.com/fr0stylo/quoterecon/internal/webhooks/qbo"
)

// WebhookRoutes registers webhook endpoints.
type WebhookRoutes struct {
	qbo *qbowebhook.Handler
}

// NewWebhookRoutes constructs webhook routes.
func NewWebhookRoutes(handler *qbowebhook.Handler) *WebhookRoutes {
	return &WebhookRoutes{qbo: handler}
}

// RegisterRoutes registers webhook endpoints.
func (w *WebhookRoutes) RegisterRoutes(s *echo.Echo) {
	s.POST("/webhooks/qbo", w.handleQBOWebhook)
}

func (w *WebhookRoutes) handleQBOWebhook(c echo.Context) error {
	return w.qbo.Handle(c.Response(), c.Request())
}
