package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository provides row access for invoices. Methods take the gorm handle
// explicitly so the service can compose them inside one transaction.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	InsertItems(ctx context.Context, db *gorm.DB, items []InvoiceItem) error
	FindByChalan(ctx context.Context, db *gorm.DB, chalanNo int64) (*Invoice, error)
	ItemsByInvoice(ctx context.Context, db *gorm.DB, invoiceID int64) ([]InvoiceItem, error)
	// List returns all headers ordered by chalan number ascending.
	List(ctx context.Context, db *gorm.DB) ([]Invoice, error)
	// ListItems returns every stored item ordered by invoice then serial.
	ListItems(ctx context.Context, db *gorm.DB) ([]InvoiceItem, error)
	// MaxChalan returns the highest chalan number ever persisted, 0 if none.
	MaxChalan(ctx context.Context, db *gorm.DB) (int64, error)
}
