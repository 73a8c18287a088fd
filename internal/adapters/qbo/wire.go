package qbo

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fr0stylo/quoterecon/internal/app/ports"
)

type invoiceEnvelope struct {
	Invoice *invoicePayload `json:"Invoice"`
	Fault   *ports.Fault    `json:"Fault"`
}

type faultEnvelope struct {
	Fault *ports.Fault `json:"Fault"`
}

type invoicePayload struct {
	ID          string          `json:"Id"`
	SyncToken   string          `json:"SyncToken"`
	TxnDate     string          `json:"TxnDate"`
	CustomerRef refPayload      `json:"CustomerRef"`
	BillAddr    *addressPayload `json:"BillAddr"`
	Line        []linePayload   `json:"Line"`
}

type refPayload struct {
	Value string `json:"value"`
	Name  string `json:"name,omitempty"`
}

type addressPayload struct {
	Line1 string `json:"Line1"`
}

type linePayload struct {
	ID                  string              `json:"Id"`
	LineNum             int                 `json:"LineNum"`
	Description         string              `json:"Description"`
	Amount              decimal.Decimal     `json:"Amount"`
	DetailType          string              `json:"DetailType"`
	SalesItemLineDetail *salesDetailPayload `json:"SalesItemLineDetail"`
}

type salesDetailPayload struct {
	ItemRef   refPayload       `json:"ItemRef"`
	UnitPrice *decimal.Decimal `json:"UnitPrice"`
	Qty       *decimal.Decimal `json:"Qty"`
}

// Outbound update payloads encode money as bare JSON numbers.
type updateRequest struct {
	ID        string       `json:"Id"`
	SyncToken string       `json:"SyncToken"`
	Sparse    bool         `json:"sparse"`
	Line      []updateLine `json:"Line"`
}

type updateLine struct {
	ID                  string            `json:"Id,omitempty"`
	LineNum             int               `json:"LineNum,omitempty"`
	Description         string            `json:"Description,omitempty"`
	Amount              json.Number       `json:"Amount"`
	DetailType          string            `json:"DetailType"`
	SalesItemLineDetail updateSalesDetail `json:"SalesItemLineDetail"`
}

type updateSalesDetail struct {
	ItemRef   refPayload  `json:"ItemRef"`
	UnitPrice json.Number `json:"UnitPrice"`
	Qty       json.Number `json:"Qty"`
}

func (p invoicePayload) toInvoice() ports.Invoice {
	invoice := ports.Invoice{
		ID:              p.ID,
		SyncToken:       p.SyncToken,
		CustomerName:    strings.TrimSpace(p.CustomerRef.Name),
		TransactionDate: strings.TrimSpace(p.TxnDate),
		Lines:           make([]ports.InvoiceLine, 0, len(p.Line)),
	}
	if p.BillAddr != nil {
		invoice.BillAddressLine1 = strings.TrimSpace(p.BillAddr.Line1)
	}
	for _, line := range p.Line {
		converted := ports.InvoiceLine{
			ID:          line.ID,
			LineNum:     line.LineNum,
			Description: line.Description,
			DetailType:  line.DetailType,
			Amount:      line.Amount,
		}
		if detail := line.SalesItemLineDetail; detail != nil {
			converted.ItemRef = ports.ItemRef{Value: detail.ItemRef.Value, Name: detail.ItemRef.Name}
			converted.Quantity = detail.Qty
			converted.UnitPrice = detail.UnitPrice
		}
		invoice.Lines = append(invoice.Lines, converted)
	}
	return invoice
}

func newUpdateRequest(update ports.InvoiceUpdate) updateRequest {
	lines := make([]updateLine, 0, len(update.Lines))
	for _, line := range update.Lines {
		qty := decimal.NewFromInt(1)
		if line.Quantity != nil {
			qty = *line.Quantity
		}
		unitPrice := decimal.Zero
		if line.UnitPrice != nil {
			unitPrice = *line.UnitPrice
		}
		lines = append(lines, updateLine{
			ID:          line.ID,
			LineNum:     line.LineNum,
			Description: line.Description,
			Amount:      json.Number(line.Amount.StringFixed(2)),
			DetailType:  ports.SalesItemLineDetail,
			SalesItemLineDetail: updateSalesDetail{
				ItemRef:   refPayload{Value: line.ItemRef.Value, Name: line.ItemRef.Name},
				UnitPrice: json.Number(unitPrice.String()),
				Qty:       json.Number(qty.String()),
			},
		})
	}
	return updateRequest{
		ID:        update.InvoiceID,
		SyncToken: update.SyncToken,
		Sparse:    true,
		Line:      lines,
	}
}
