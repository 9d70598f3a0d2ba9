package repository

import (
	"context"

	"github.com/vivekrupapara/chalan/internal/invoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

// Provide returns the invoice repository.
func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Create(invoice).Error
}

func (r *repo) InsertItems(ctx context.Context, db *gorm.DB, items []domain.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&items).Error
}

func (r *repo) FindByChalan(ctx context.Context, db *gorm.DB, chalanNo int64) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).Raw(
		`SELECT id, chalan_no, party_name, city, lr_no, dt, tax_percent, pandf,
		        subtotal, tax_amount, grand_total
		 FROM invoices WHERE chalan_no = ?`,
		chalanNo,
	).Scan(&invoice).Error
	if err != nil {
		return nil, err
	}
	if invoice.ID == 0 {
		return nil, nil
	}
	return &invoice, nil
}

func (r *repo) ItemsByInvoice(ctx context.Context, db *gorm.DB, invoiceID int64) ([]domain.InvoiceItem, error) {
	var items []domain.InvoiceItem
	err := db.WithContext(ctx).Raw(
		`SELECT id, invoice_id, sr, item_name, qty, rate, amount
		 FROM invoice_items WHERE invoice_id = ? ORDER BY sr ASC`,
		invoiceID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Order("chalan_no asc").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repo) ListItems(ctx context.Context, db *gorm.DB) ([]domain.InvoiceItem, error) {
	var items []domain.InvoiceItem
	err := db.WithContext(ctx).
		Model(&domain.InvoiceItem{}).
		Order("invoice_id asc, sr asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) MaxChalan(ctx context.Context, db *gorm.DB) (int64, error) {
	var max int64
	err := db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(chalan_no), 0) FROM invoices`).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}
