// Package domain contains persistence models for invoices.
package domain

import (
	"github.com/shopspring/decimal"
)

// Invoice is one stored invoice header, keyed by its chalan number. Items are
// loaded alongside the header but persisted in their own table.
type Invoice struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ChalanNo   int64           `gorm:"not null;uniqueIndex:ux_invoices_chalan_no" json:"chalan_no"`
	PartyName  string          `gorm:"type:text;not null;default:''" json:"party_name"`
	City       string          `gorm:"type:text;not null;default:''" json:"city"`
	LRNo       string          `gorm:"type:text;not null;default:'';column:lr_no" json:"lr_no"`
	Date       string          `gorm:"type:text;not null;default:'';column:dt" json:"date"`
	TaxPercent decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"tax_percent"`
	PandF      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0;column:pandf" json:"pandf"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"subtotal"`
	TaxAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"tax_amount"`
	GrandTotal decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"grand_total"`

	Items []InvoiceItem `gorm:"-" json:"items,omitempty"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceItem is a line on a stored invoice. Sr is the 1-based display order
// within the invoice; it is reassigned from list order on every save and is
// not a stable identifier.
type InvoiceItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID int64           `gorm:"not null;index" json:"invoice_id"`
	Sr        int             `gorm:"not null" json:"sr"`
	ItemName  string          `gorm:"type:text;not null" json:"item_name"`
	Qty       decimal.Decimal `gorm:"type:decimal(18,3);not null" json:"qty"`
	Rate      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"rate"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
}

// TableName sets the database table name.
func (InvoiceItem) TableName() string { return "invoice_items" }
