package qbo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
)

const (
	// SandboxBaseURL is the accounting API host for development companies.
	SandboxBaseURL = "https://sandbox-quickbooks.api.intuit.com"
	// ProductionBaseURL is the accounting API host for live companies.
	ProductionBaseURL = "https://quickbooks.api.intuit.com"

	defaultMinorVersion = "75"
	maxErrorBodyBytes   = 64 << 10
)

// ClientConfig configures the accounting API client.
type ClientConfig struct {
	BaseURL      string
	MinorVersion string
	Timeout      time.Duration
	HTTPClient   *http.Client
}

// Client reads and updates invoices through the accounting REST API.
type Client struct {
	baseURL      string
	minorVersion string
	httpClient   *http.Client
}

// NewClient constructs an accounting API client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = SandboxBaseURL
	}
	minorVersion := strings.TrimSpace(cfg.MinorVersion)
	if minorVersion == "" {
		minorVersion = defaultMinorVersion
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
	return &Client{baseURL: baseURL, minorVersion: minorVersion, httpClient: httpClient}
}

// FetchInvoice reads one invoice. A 401 yields an error matching ports.ErrUnauthorized.
func (c *Client) FetchInvoice(ctx context.Context, realmID, invoiceID, accessToken string) (ports.Invoice, error) {
	const op = "fetch invoice"
	endpoint := c.endpoint(realmID, "invoice", url.PathEscape(invoiceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.Invoice{}, &ports.UpstreamError{Op: op, Err: err}
	}
	c.authorize(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Invoice{}, &ports.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return ports.Invoice{}, upstreamError(op, resp)
	}

	var envelope invoiceEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return ports.Invoice{}, &ports.UpstreamError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode invoice: %w", err)}
	}
	if envelope.Fault != nil {
		return ports.Invoice{}, &ports.UpstreamError{Op: op, StatusCode: resp.StatusCode, Fault: envelope.Fault}
	}
	if envelope.Invoice == nil {
		return ports.Invoice{}, &ports.UpstreamError{Op: op, StatusCode: resp.StatusCode, Body: "response has no Invoice"}
	}
	return envelope.Invoice.toInvoice(), nil
}

// UpdateInvoice replaces the invoice lines, conditional on update.SyncToken.
// It is never retried; a stale token is reported with the parsed fault.
func (c *Client) UpdateInvoice(ctx context.Context, realmID string, update ports.InvoiceUpdate, accessToken string) error {
	const op = "update invoice"
	raw, err := json.Marshal(newUpdateRequest(update))
	if err != nil {
		return &ports.UpstreamError{Op: op, Err: fmt.Errorf("encode update: %w", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(realmID, "invoice"), bytes.NewReader(raw))
	if err != nil {
		return &ports.UpstreamError{Op: op, Err: err}
	}
	c.authorize(req, accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ports.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return upstreamError(op, resp)
	}

	var envelope faultEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Fault != nil {
		return &ports.UpstreamError{Op: op, StatusCode: resp.StatusCode, Fault: envelope.Fault}
	}
	return nil
}

func (c *Client) endpoint(realmID string, segments ...string) string {
	path := c.baseURL + "/v3/company/" + url.PathEscape(strings.TrimSpace(realmID)) + "/" + strings.Join(segments, "/")
	return path + "?minorversion=" + url.QueryEscape(c.minorVersion)
}

func (c *Client) authorize(req *http.Request, accessToken string) {
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(accessToken))
	req.Header.Set("Accept", "application/json")
}

func upstreamError(op string, resp *http.Response) *ports.UpstreamError {
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	out := &ports.UpstreamError{Op: op, StatusCode: resp.StatusCode}
	var envelope faultEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Fault != nil {
		out.Fault = envelope.Fault
		return out
	}
	out.Body = strings.TrimSpace(string(payload))
	return out
}

var _ ports.InvoiceGateway = (*Client)(nil)
