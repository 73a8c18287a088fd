package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
	"github.com/fr0stylo/quoterecon/internal/observability"
	"github.com/fr0stylo/quoterecon/internal/productcode"
)

// Outcome is the terminal state of one reconciled entity.
type Outcome string

const (
	// OutcomeUpdated means the invoice was patched with quoted prices.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkippedRealm means the event belongs to a company that is not connected.
	OutcomeSkippedRealm Outcome = "skipped_realm"
	// OutcomeSkippedAuth means the token refresh was rejected.
	OutcomeSkippedAuth Outcome = "skipped_auth"
	// OutcomeSkippedFetch means the invoice could not be read.
	OutcomeSkippedFetch Outcome = "skipped_fetch"
	// OutcomeSkippedInvalid means the invoice lacks a field needed for matching.
	OutcomeSkippedInvalid Outcome = "skipped_invalid"
	// OutcomeSkippedNotFound means no customer, site or quote matched.
	OutcomeSkippedNotFound Outcome = "skipped_not_found"
	// OutcomeSkippedLookup means the quote repository failed.
	OutcomeSkippedLookup Outcome = "skipped_lookup"
	// OutcomeSkippedNoMatch means no invoice line matched a quoted product.
	OutcomeSkippedNoMatch Outcome = "skipped_no_match"
	// OutcomeUpdateFailed means the accounting API rejected the update.
	OutcomeUpdateFailed Outcome = "update_failed"
)

// EntityResult describes what happened to one invoice event.
type EntityResult struct {
	RealmID        string
	InvoiceID      string
	Outcome        Outcome
	Reason         string
	MatchedLines   int
	UnmatchedLines int
	Refreshed      bool
}

// Report summarizes one notification.
type Report struct {
	Entities []EntityResult
	Ignored  int
}

// Count returns the number of entities that ended in outcome.
func (r Report) Count(outcome Outcome) int {
	count := 0
	for _, entity := range r.Entities {
		if entity.Outcome == outcome {
			count++
		}
	}
	return count
}

// ReconcileService republishes quoted prices onto newly created invoices.
type ReconcileService struct {
	credentials ports.CredentialProvider
	invoices    ports.InvoiceGateway
	quotes      ports.QuoteLookup
	log         *slog.Logger
	metrics     reconcileMetrics
}

// NewReconcileService constructs the reconciliation engine.
func NewReconcileService(credentials ports.CredentialProvider, invoices ports.InvoiceGateway, quotes ports.QuoteLookup, log *slog.Logger) *ReconcileService {
	if log == nil {
		log = slog.Default()
	}
	return &ReconcileService{
		credentials: credentials,
		invoices:    invoices,
		quotes:      quotes,
		log:         log,
		metrics:     newReconcileMetrics(),
	}
}

// Reconcile processes invoice-created events sequentially. Only credential
// storage failures are returned; every other failure is recorded per entity.
func (s *ReconcileService) Reconcile(ctx context.Context, notification ports.Notification) (Report, error) {
	var report Report
	if len(notification) == 0 {
		s.metrics.recordNotification(ctx, "empty")
		return report, nil
	}

	for _, event := range notification {
		if event.EntityType != ports.EntityInvoice || event.Operation != ports.OperationCreate {
			report.Ignored++
			continue
		}
		result, err := s.reconcileInvoice(ctx, event)
		if err != nil {
			s.metrics.recordNotification(ctx, "aborted")
			return report, err
		}
		s.metrics.recordEntity(ctx, result.Outcome)
		s.metrics.recordLines(ctx, result.MatchedLines, result.UnmatchedLines)
		report.Entities = append(report.Entities, result)
	}

	s.metrics.recordNotification(ctx, "processed")
	return report, nil
}

func (s *ReconcileService) reconcileInvoice(ctx context.Context, event ports.ChangeEvent) (EntityResult, error) {
	ctx = observability.WithEntityIdentity(ctx, event.RealmID, event.EntityID)
	ctx, span := observability.StartEntitySpan(ctx, event.EntityType, event.EntityID)
	defer span.End()

	log := s.log
	result := EntityResult{RealmID: event.RealmID, InvoiceID: event.EntityID}
	skip := func(outcome Outcome, reason string, attrs ...any) (EntityResult, error) {
		result.Outcome = outcome
		result.Reason = reason
		log.WarnContext(ctx, "invoice skipped", append([]any{"outcome", string(outcome), "reason", reason}, attrs...)...)
		return result, nil
	}

	creds, err := s.credentials.Load(ctx)
	if err != nil {
		span.RecordError(err)
		log.ErrorContext(ctx, "credentials unavailable", "error", err)
		return result, fmt.Errorf("load credentials: %w", err)
	}
	realmID := strings.TrimSpace(event.RealmID)
	if realmID == "" {
		realmID = creds.RealmID
		result.RealmID = realmID
		ctx = observability.WithEntityIdentity(ctx, realmID, event.EntityID)
	}
	if realmID != creds.RealmID {
		return skip(OutcomeSkippedRealm, "event realm is not the connected realm", "connected_realm_id", creds.RealmID)
	}

	accessToken := creds.AccessToken
	invoice, err := s.invoices.FetchInvoice(ctx, realmID, event.EntityID, accessToken)
	if errors.Is(err, ports.ErrUnauthorized) {
		log.InfoContext(ctx, "access token rejected, refreshing")
		accessToken, err = s.credentials.Refresh(ctx, creds.AccessToken, creds.RefreshToken)
		if err != nil {
			span.RecordError(err)
			if errors.Is(err, ports.ErrStorage) {
				return result, fmt.Errorf("refresh credentials: %w", err)
			}
			return skip(OutcomeSkippedAuth, "token refresh failed", "error", err)
		}
		result.Refreshed = true
		invoice, err = s.invoices.FetchInvoice(ctx, realmID, event.EntityID, accessToken)
	}
	if err != nil {
		span.RecordError(err)
		return skip(OutcomeSkippedFetch, "invoice fetch failed", "error", err)
	}

	if err := validateInvoice(invoice, event.EntityID); err != nil {
		var validationErr *ports.ValidationError
		field := ""
		if errors.As(err, &validationErr) {
			field = validationErr.Field
		}
		return skip(OutcomeSkippedInvalid, err.Error(), "field", field)
	}

	quote, outcome, err := s.resolveQuote(ctx, invoice)
	if err != nil {
		if outcome == OutcomeSkippedLookup {
			span.RecordError(err)
			log.ErrorContext(ctx, "quote lookup failed", "error", err)
		}
		return skip(outcome, err.Error(),
			"customer", invoice.CustomerName,
			"site_address", invoice.BillAddressLine1,
			"transaction_date", invoice.TransactionDate,
		)
	}

	lines, unmatched := s.matchLines(ctx, log, invoice.Lines, quote.Products)
	result.MatchedLines = len(lines)
	result.UnmatchedLines = unmatched
	if len(lines) == 0 {
		return skip(OutcomeSkippedNoMatch, "no invoice line matched a quoted product", "quote_id", quote.ID)
	}

	update := ports.InvoiceUpdate{InvoiceID: invoice.ID, SyncToken: invoice.SyncToken, Lines: lines}
	if err := s.invoices.UpdateInvoice(ctx, realmID, update, accessToken); err != nil {
		span.RecordError(err)
		result.Outcome = OutcomeUpdateFailed
		result.Reason = err.Error()
		attrs := []any{"sync_token", invoice.SyncToken, "error", err}
		var upstream *ports.UpstreamError
		if errors.As(err, &upstream) && upstream.Fault != nil {
			attrs = append(attrs, "fault", upstream.Fault.String())
		}
		log.ErrorContext(ctx, "invoice update rejected", attrs...)
		return result, nil
	}

	result.Outcome = OutcomeUpdated
	log.InfoContext(ctx, "invoice reconciled",
		"quote_id", quote.ID,
		"matched_lines", result.MatchedLines,
		"unmatched_lines", result.UnmatchedLines,
	)
	return result, nil
}

func validateInvoice(invoice ports.Invoice, invoiceID string) error {
	switch {
	case strings.TrimSpace(invoice.CustomerName) == "":
		return &ports.ValidationError{InvoiceID: invoiceID, Field: "CustomerRef.name"}
	case strings.TrimSpace(invoice.BillAddressLine1) == "":
		return &ports.ValidationError{InvoiceID: invoiceID, Field: "BillAddr.Line1"}
	case strings.TrimSpace(invoice.TransactionDate) == "":
		return &ports.ValidationError{InvoiceID: invoiceID, Field: "TxnDate"}
	}
	return nil
}

func (s *ReconcileService) resolveQuote(ctx context.Context, invoice ports.Invoice) (ports.Quote, Outcome, error) {
	classify := func(err error) Outcome {
		if errors.Is(err, ports.ErrNotFound) {
			return OutcomeSkippedNotFound
		}
		return OutcomeSkippedLookup
	}

	customer, err := s.quotes.FindCustomerByName(ctx, invoice.CustomerName)
	if err != nil {
		return ports.Quote{}, classify(err), err
	}
	site, err := s.quotes.FindSiteByCustomerAndAddress(ctx, customer.ID, invoice.BillAddressLine1)
	if err != nil {
		return ports.Quote{}, classify(err), err
	}
	quote, err := s.quotes.FindQuoteBySiteAndDate(ctx, site.ID, invoice.TransactionDate)
	if err != nil {
		return ports.Quote{}, classify(err), err
	}
	return quote, "", nil
}

// matchLines prices every sales line whose normalized product name equals a
// quoted product. Unmatched lines are left out of the returned set.
func (s *ReconcileService) matchLines(ctx context.Context, log *slog.Logger, lines []ports.InvoiceLine, products []ports.QuoteProduct) ([]ports.InvoiceLine, int) {
	matched := make([]ports.InvoiceLine, 0, len(lines))
	unmatched := 0
	for _, line := range lines {
		if line.DetailType != ports.SalesItemLineDetail {
			continue
		}
		name := line.ProductName()
		product, ok := findQuotedProduct(name, products)
		if !ok {
			unmatched++
			log.InfoContext(ctx, "invoice line unmatched",
				"line_id", line.ID,
				"product", name,
				"product_code", productcode.Normalize(name),
			)
			continue
		}
		matched = append(matched, repriceLine(line, product.Price))
	}
	return matched, unmatched
}

func findQuotedProduct(name string, products []ports.QuoteProduct) (ports.QuoteProduct, bool) {
	for _, product := range products {
		if productcode.Equal(name, product.Name) {
			return product, true
		}
	}
	return ports.QuoteProduct{}, false
}

// repriceLine returns a copy of line priced at unitPrice. The amount is
// rounded to cents, half away from zero; a missing quantity counts as one.
func repriceLine(line ports.InvoiceLine, unitPrice decimal.Decimal) ports.InvoiceLine {
	qty := decimal.NewFromInt(1)
	if line.Quantity != nil {
		qty = *line.Quantity
	}
	price := unitPrice
	line.Quantity = &qty
	line.UnitPrice = &price
	line.Amount = price.Mul(qty).Round(2)
	line.DetailType = ports.SalesItemLineDetail
	return line
}
