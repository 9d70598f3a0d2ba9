// Package domain contains the durable key/value metadata store used by the
// chalan counter and the company/bank settings.
package domain

import (
	"context"

	"gorm.io/gorm"
)

// Meta is a single durable key/value row.
type Meta struct {
	Key   string `gorm:"type:text;primaryKey;column:key"`
	Value string `gorm:"type:text;not null;column:value"`
}

// TableName sets the database table name.
func (Meta) TableName() string { return "meta" }

// Repository provides durable key/value access. Methods take the gorm handle
// explicitly so callers can run them inside their own transaction.
type Repository interface {
	// Get returns the stored value, or nil when the key is absent.
	Get(ctx context.Context, db *gorm.DB, key string) (*string, error)
	// GetDefault returns the stored value, or fallback when the key is absent.
	GetDefault(ctx context.Context, db *gorm.DB, key, fallback string) (string, error)
	// Set upserts the value for key.
	Set(ctx context.Context, db *gorm.DB, key, value string) error
	// SetIfAbsent stores the value only when the key does not exist yet.
	SetIfAbsent(ctx context.Context, db *gorm.DB, key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, db *gorm.DB, key string) error
}
