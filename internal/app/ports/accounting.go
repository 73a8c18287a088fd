package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// Entity and operation names used by accounting change notifications.
const (
	EntityInvoice   = "Invoice"
	OperationCreate = "Create"
)

// ChangeEvent is one entity change inside a notification.
type ChangeEvent struct {
	RealmID    string
	EntityType string
	Operation  string
	EntityID   string
}

// Notification is the ordered list of change events delivered by one webhook call.
type Notification []ChangeEvent

// Invoice is the slice of an accounting invoice needed for reconciliation.
type Invoice struct {
	ID               string
	SyncToken        string
	CustomerName     string
	BillAddressLine1 string
	TransactionDate  string
	Lines            []InvoiceLine
}

// Line detail types.
const (
	SalesItemLineDetail = "SalesItemLineDetail"
)

// InvoiceLine is one invoice line.
type InvoiceLine struct {
	ID          string
	LineNum     int
	Description string
	DetailType  string
	ItemRef     ItemRef
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
	Amount      decimal.Decimal
}

// ProductName is the raw product text used for matching: the item reference
// name, falling back to the line description.
func (l InvoiceLine) ProductName() string {
	if l.ItemRef.Name != "" {
		return l.ItemRef.Name
	}
	return l.Description
}

// ItemRef references an accounting item.
type ItemRef struct {
	Value string
	Name  string
}

// InvoiceUpdate is a conditional, full line replacement of an invoice.
type InvoiceUpdate struct {
	InvoiceID string
	SyncToken string
	Lines     []InvoiceLine
}

// InvoiceGateway reads and patches invoices in the accounting system.
type InvoiceGateway interface {
	FetchInvoice(ctx context.Context, realmID, invoiceID, accessToken string) (Invoice, error)
	UpdateInvoice(ctx context.Context, realmID string, update InvoiceUpdate, accessToken string) error
}
