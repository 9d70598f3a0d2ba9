package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// LineItemInput is a staged line item before totals are derived.
type LineItemInput struct {
	ItemName string          `json:"item_name"`
	Qty      decimal.Decimal `json:"qty"`
	Rate     decimal.Decimal `json:"rate"`
}

// SaveInvoiceRequest carries a header without totals plus its staged items.
// Totals are always derived by the service, never accepted from the caller.
type SaveInvoiceRequest struct {
	ChalanNo   int64           `json:"chalan_no"`
	PartyName  string          `json:"party_name"`
	City       string          `json:"city"`
	LRNo       string          `json:"lr_no"`
	Date       string          `json:"date"`
	TaxPercent decimal.Decimal `json:"tax_percent"`
	PandF      decimal.Decimal `json:"pandf"`
	Items      []LineItemInput `json:"items"`
}

type Service interface {
	// Save persists the header and all items atomically and returns the
	// stored invoice including derived totals and item serials.
	Save(ctx context.Context, req SaveInvoiceRequest) (Invoice, error)
	// GetByChalan reconstructs a stored invoice, items ordered by serial.
	GetByChalan(ctx context.Context, chalanNo int64) (Invoice, error)
	// List returns all invoice headers ordered by chalan number.
	List(ctx context.Context) ([]Invoice, error)
}

var (
	ErrNotFound        = errors.New("invoice_not_found")
	ErrDuplicateChalan = errors.New("duplicate_chalan")

	ErrInvalidChalan     = errors.New("invalid_chalan_no")
	ErrNoItems           = errors.New("invalid_items")
	ErrItemNameRequired  = errors.New("invalid_item_name")
	ErrInvalidQuantity   = errors.New("invalid_qty")
	ErrInvalidRate       = errors.New("invalid_rate")
	ErrInvalidTaxPercent = errors.New("invalid_tax_percent")
	ErrInvalidPandF      = errors.New("invalid_pandf")
)
