package sqlite

import (
	"context"

	"github.com/fr0stylo/quoterecon/internal/db/queries"
)

type quoteDatabase interface {
	GetCustomerByName(ctx context.Context, name string) (queries.GetCustomerByNameRow, error)
	GetSiteByCustomerAndAddress(ctx context.Context, arg queries.GetSiteByCustomerAndAddressParams) (queries.GetSiteByCustomerAndAddressRow, error)
	GetLatestQuoteBySiteAndDate(ctx context.Context, arg queries.GetLatestQuoteBySiteAndDateParams) (queries.GetLatestQuoteBySiteAndDateRow, error)
	ListQuoteProducts(ctx context.Context, quoteID int64) ([]queries.ListQuoteProductsRow, error)

	WithTx(ctx context.Context, fn func(*queries.Queries) error) error
}

type credentialDatabase interface {
	GetCredentials(ctx context.Context) (queries.GetCredentialsRow, error)
	SaveCredentials(ctx context.Context, arg queries.SaveCredentialsParams) error
	UpdateCredentialTokens(ctx context.Context, arg queries.UpdateCredentialTokensParams) (int64, error)
}
