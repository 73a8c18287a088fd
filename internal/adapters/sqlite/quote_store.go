package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
	"github.com/fr0stylo/quoterecon/internal/db/queries"
)

// QuoteStore serves quote lookups and quote intake from sqlite.
type QuoteStore struct {
	db quoteDatabase
}

// NewQuoteStore creates a quote store over an open database.
func NewQuoteStore(database quoteDatabase) *QuoteStore {
	return &QuoteStore{db: database}
}

func (s *QuoteStore) FindCustomerByName(ctx context.Context, name string) (ports.Customer, error) {
	row, err := s.db.GetCustomerByName(ctx, name)
	if err != nil {
		return ports.Customer{}, lookupError("customer", name, err)
	}
	return ports.Customer{ID: row.ID, Name: row.Name, Email: row.Email}, nil
}

func (s *QuoteStore) FindSiteByCustomerAndAddress(ctx context.Context, customerID int64, address string) (ports.Site, error) {
	row, err := s.db.GetSiteByCustomerAndAddress(ctx, queries.GetSiteByCustomerAndAddressParams{
		CustomerID: customerID,
		Address:    address,
	})
	if err != nil {
		return ports.Site{}, lookupError("site", fmt.Sprintf("%d/%s", customerID, address), err)
	}
	return ports.Site{ID: row.ID, CustomerID: row.CustomerID, Address: row.Address}, nil
}

func (s *QuoteStore) FindQuoteBySiteAndDate(ctx context.Context, siteID int64, date string) (ports.Quote, error) {
	row, err := s.db.GetLatestQuoteBySiteAndDate(ctx, queries.GetLatestQuoteBySiteAndDateParams{
		SiteID:    siteID,
		QuoteDate: date,
	})
	if err != nil {
		return ports.Quote{}, lookupError("quote", fmt.Sprintf("%d/%s", siteID, date), err)
	}
	rows, err := s.db.ListQuoteProducts(ctx, row.ID)
	if err != nil {
		return ports.Quote{}, fmt.Errorf("list quote %d products: %w", row.ID, err)
	}
	products, err := mapQuoteProducts(rows)
	if err != nil {
		return ports.Quote{}, fmt.Errorf("quote %d: %w", row.ID, err)
	}
	return ports.Quote{ID: row.ID, SiteID: row.SiteID, Date: row.QuoteDate, Products: products}, nil
}

// SaveQuote upserts the customer and site and inserts the quote in one transaction.
func (s *QuoteStore) SaveQuote(ctx context.Context, input ports.SaveQuoteInput) (ports.Quote, error) {
	var saved ports.Quote
	err := s.db.WithTx(ctx, func(q *queries.Queries) error {
		customer, err := q.UpsertCustomerByEmail(ctx, queries.UpsertCustomerByEmailParams{
			Name:  strings.TrimSpace(input.CustomerName),
			Email: strings.ToLower(strings.TrimSpace(input.CustomerEmail)),
		})
		if err != nil {
			return fmt.Errorf("upsert customer: %w", err)
		}
		site, err := q.UpsertSite(ctx, queries.UpsertSiteParams{
			CustomerID: customer.ID,
			Address:    strings.TrimSpace(input.SiteAddress),
		})
		if err != nil {
			return fmt.Errorf("upsert site: %w", err)
		}
		quote, err := q.CreateQuote(ctx, queries.CreateQuoteParams{
			SiteID:    site.ID,
			QuoteDate: strings.TrimSpace(input.Date),
		})
		if err != nil {
			return fmt.Errorf("create quote: %w", err)
		}
		products := make([]ports.QuoteProduct, 0, len(input.Products))
		for i, product := range input.Products {
			name := strings.TrimSpace(product.Name)
			if err := q.CreateQuoteProduct(ctx, queries.CreateQuoteProductParams{
				QuoteID:  quote.ID,
				Position: int64(i),
				Name:     name,
				Price:    product.Price.String(),
			}); err != nil {
				return fmt.Errorf("create quote product %q: %w", name, err)
			}
			products = append(products, ports.QuoteProduct{Name: name, Price: product.Price})
		}
		saved = ports.Quote{ID: quote.ID, SiteID: quote.SiteID, Date: quote.QuoteDate, Products: products}
		return nil
	})
	if err != nil {
		return ports.Quote{}, err
	}
	return saved, nil
}

func mapQuoteProducts(rows []queries.ListQuoteProductsRow) ([]ports.QuoteProduct, error) {
	products := make([]ports.QuoteProduct, 0, len(rows))
	for _, row := range rows {
		price, err := decimal.NewFromString(strings.TrimSpace(row.Price))
		if err != nil {
			return nil, fmt.Errorf("product %q has invalid price %q: %w", row.Name, row.Price, err)
		}
		products = append(products, ports.QuoteProduct{Name: row.Name, Price: price})
	}
	return products, nil
}

func lookupError(kind, key string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %q: %w", kind, key, ports.ErrNotFound)
	}
	return fmt.Errorf("find %s %q: %w", kind, key, err)
}

var (
	_ ports.QuoteLookup = (*QuoteStore)(nil)
	_ ports.QuoteIntake = (*QuoteStore)(nil)
)
