// Package migration creates the schema on startup. Creation is idempotent:
// AutoMigrate only adds what is missing and never drops or rewrites data, so
// reopening an existing database leaves every stored row untouched.
package migration

import (
	"errors"

	catalogdomain "github.com/vivekrupapara/chalan/internal/catalog/domain"
	invoicedomain "github.com/vivekrupapara/chalan/internal/invoice/domain"
	metadomain "github.com/vivekrupapara/chalan/internal/meta/domain"
	"gorm.io/gorm"
)

// Run creates the meta, invoice, invoice item and catalog tables.
func Run(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	return db.AutoMigrate(
		&metadomain.Meta{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceItem{},
		&catalogdomain.CatalogItem{},
	)
}
