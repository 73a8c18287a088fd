package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// Customer is a quoted customer.
type Customer struct {
	ID    int64
	Name  string
	Email string
}

// Site is a customer delivery address.
type Site struct {
	ID         int64
	CustomerID int64
	Address    string
}

// Quote is a dated price sheet for one site.
type Quote struct {
	ID       int64
	SiteID   int64
	Date     string
	Products []QuoteProduct
}

// QuoteProduct is one quoted unit price.
type QuoteProduct struct {
	Name  string
	Price decimal.Decimal
}

// QuoteLookup is the read-only repository used during reconciliation.
// Each lookup returns exactly one record or ErrNotFound.
type QuoteLookup interface {
	FindCustomerByName(ctx context.Context, name string) (Customer, error)
	FindSiteByCustomerAndAddress(ctx context.Context, customerID int64, address string) (Site, error)
	FindQuoteBySiteAndDate(ctx context.Context, siteID int64, date string) (Quote, error)
}

// QuoteIntake is the write contract used by the quote intake endpoint.
type QuoteIntake interface {
	SaveQuote(ctx context.Context, input SaveQuoteInput) (Quote, error)
}

// SaveQuoteInput upserts the customer by email and the site by address, then
// inserts a new quote.
type SaveQuoteInput struct {
	CustomerName  string
	CustomerEmail string
	SiteAddress   string
	Date          string
	Products      []QuoteProduct
}
