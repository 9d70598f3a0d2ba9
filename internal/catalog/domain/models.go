// Package domain contains the item master catalog: a rolling cache of the
// last used rate per item name, used to pre-fill new line items.
package domain

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogItem maps an item name to its most recently used rate.
type CatalogItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:text;not null;uniqueIndex:ux_catalog_items_name" json:"name"`
	DefaultRate decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"default_rate"`
}

// TableName sets the database table name.
func (CatalogItem) TableName() string { return "catalog_items" }

type Repository interface {
	// Upsert inserts the name or overwrites its rate, latest wins.
	Upsert(ctx context.Context, db *gorm.DB, name string, rate decimal.Decimal) error
	FindByName(ctx context.Context, db *gorm.DB, name string) (*CatalogItem, error)
	// List returns every entry ordered by name ascending.
	List(ctx context.Context, db *gorm.DB) ([]CatalogItem, error)
	Rename(ctx context.Context, db *gorm.DB, oldName, newName string, rate decimal.Decimal) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, name string) (int64, error)
}

type Service interface {
	// Upsert records the latest rate used for an item name.
	Upsert(ctx context.Context, name string, rate decimal.Decimal) error
	// LookupRate returns the default rate for name, or nil when unknown.
	LookupRate(ctx context.Context, name string) (*decimal.Decimal, error)
	ListAll(ctx context.Context) ([]CatalogItem, error)
	// Rename is an administrative override changing name and rate in place.
	Rename(ctx context.Context, oldName, newName string, rate decimal.Decimal) error
	Delete(ctx context.Context, name string) error
}

var (
	ErrNotFound     = errors.New("catalog_item_not_found")
	ErrNameRequired = errors.New("invalid_catalog_name")
	ErrInvalidRate  = errors.New("invalid_catalog_rate")
	ErrNameExists   = errors.New("catalog_name_exists")
)
