package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
	"github.com/fr0stylo/quoterecon/internal/db"
)

func openTestDB(t *testing.T) *db.Database {
	t.Helper()
	database, err := db.New(filepath.Join(t.TempDir(), "quotes-test"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestQuoteStoreSaveAndLookupChain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewQuoteStore(openTestDB(t))

	saved, err := store.SaveQuote(ctx, ports.SaveQuoteInput{
		CustomerName:  "Acme Fuel",
		CustomerEmail: "Ops@Acme.test",
		SiteAddress:   "1 Main St",
		Date:          "2024-05-01",
		Products: []ports.QuoteProduct{
			{Name: "87", Price: decimal.RequireFromString("3.10")},
			{Name: "Premium", Price: decimal.RequireFromString("3.50")},
		},
	})
	if err != nil {
		t.Fatalf("save quote: %v", err)
	}
	if saved.ID == 0 || len(saved.Products) != 2 {
		t.Fatalf("unexpected saved quote: %+v", saved)
	}

	customer, err := store.FindCustomerByName(ctx, "Acme Fuel")
	if err != nil {
		t.Fatalf("find customer: %v", err)
	}
	if customer.Email != "ops@acme.test" {
		t.Fatalf("expected normalized email, got %q", customer.Email)
	}

	site, err := store.FindSiteByCustomerAndAddress(ctx, customer.ID, "1 Main St")
	if err != nil {
		t.Fatalf("find site: %v", err)
	}

	quote, err := store.FindQuoteBySiteAndDate(ctx, site.ID, "2024-05-01")
	if err != nil {
		t.Fatalf("find quote: %v", err)
	}
	if quote.ID != saved.ID || quote.SiteID != site.ID {
		t.Fatalf("unexpected quote identity: %+v", quote)
	}
	if len(quote.Products) != 2 || quote.Products[0].Name != "87" || quote.Products[1].Name != "Premium" {
		t.Fatalf("unexpected products order: %+v", quote.Products)
	}
	if !quote.Products[0].Price.Equal(decimal.RequireFromString("3.1")) {
		t.Fatalf("unexpected price: %s", quote.Products[0].Price)
	}
}

func TestQuoteStoreLookupsAreExact(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewQuoteStore(openTestDB(t))
	if _, err := store.SaveQuote(ctx, ports.SaveQuoteInput{
		CustomerName:  "Acme Fuel",
		CustomerEmail: "ops@acme.test",
		SiteAddress:   "1 Main St",
		Date:          "2024-05-01",
	}); err != nil {
		t.Fatalf("save quote: %v", err)
	}

	if _, err := store.FindCustomerByName(ctx, "acme fuel"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for case mismatch, got %v", err)
	}
	customer, err := store.FindCustomerByName(ctx, "Acme Fuel")
	if err != nil {
		t.Fatalf("find customer: %v", err)
	}
	if _, err := store.FindSiteByCustomerAndAddress(ctx, customer.ID, "1 Main Street"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for address mismatch, got %v", err)
	}
	site, err := store.FindSiteByCustomerAndAddress(ctx, customer.ID, "1 Main St")
	if err != nil {
		t.Fatalf("find site: %v", err)
	}
	if _, err := store.FindQuoteBySiteAndDate(ctx, site.ID, "2024-05-02"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for date mismatch, got %v", err)
	}
}

func TestQuoteStoreLatestQuoteWinsAndUpsertsByEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewQuoteStore(openTestDB(t))

	first, err := store.SaveQuote(ctx, ports.SaveQuoteInput{
		CustomerName:  "Acme",
		CustomerEmail: "ops@acme.test",
		SiteAddress:   "1 Main St",
		Date:          "2024-05-01",
		Products:      []ports.QuoteProduct{{Name: "87", Price: decimal.RequireFromString("3.00")}},
	})
	if err != nil {
		t.Fatalf("save first quote: %v", err)
	}
	second, err := store.SaveQuote(ctx, ports.SaveQuoteInput{
		CustomerName:  "Acme Fuel",
		CustomerEmail: "ops@acme.test",
		SiteAddress:   "1 Main St",
		Date:          "2024-05-01",
		Products:      []ports.QuoteProduct{{Name: "87", Price: decimal.RequireFromString("3.25")}},
	})
	if err != nil {
		t.Fatalf("save second quote: %v", err)
	}
	if first.SiteID != second.SiteID {
		t.Fatalf("expected site reuse, got %d and %d", first.SiteID, second.SiteID)
	}

	if _, err := store.FindCustomerByName(ctx, "Acme"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected renamed customer, got %v", err)
	}
	customer, err := store.FindCustomerByName(ctx, "Acme Fuel")
	if err != nil {
		t.Fatalf("find renamed customer: %v", err)
	}
	site, err := store.FindSiteByCustomerAndAddress(ctx, customer.ID, "1 Main St")
	if err != nil {
		t.Fatalf("find site: %v", err)
	}
	quote, err := store.FindQuoteBySiteAndDate(ctx, site.ID, "2024-05-01")
	if err != nil {
		t.Fatalf("find quote: %v", err)
	}
	if quote.ID != second.ID || !quote.Products[0].Price.Equal(decimal.RequireFromString("3.25")) {
		t.Fatalf("expected latest quote, got %+v", quote)
	}
}
