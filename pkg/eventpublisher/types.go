// Package eventpublisher builds and delivers signed accounting change
// notifications to a reconciliation webhook. It is used to drive sandbox
// environments and local servers without waiting on the provider.
package eventpublisher

import (
	"net/http"
	"time"
)

// Format selects the notification body layout.
type Format string

const (
	// FormatLegacy is the eventNotifications document.
	FormatLegacy Format = "legacy"
	// FormatCloudEvents is a structured CloudEvents JSON batch.
	FormatCloudEvents Format = "cloudevents"
)

// SignatureHeader carries the base64 HMAC-SHA256 of the body.
const SignatureHeader = "intuit-signature"

// Client posts notifications to Endpoint. VerifierToken signs each body.
type Client struct {
	Endpoint      string
	VerifierToken string
	Timeout       time.Duration
	HTTPClient    *http.Client
}

// Event is one entity change.
type Event struct {
	RealmID    string
	EntityType string
	Operation  string
	EntityID   string
	Time       time.Time
}
