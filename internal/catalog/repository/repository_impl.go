package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vivekrupapara/chalan/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

// Provide returns the catalog repository.
func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, name string, rate decimal.Decimal) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO catalog_items (name, default_rate) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET default_rate = excluded.default_rate`,
		name,
		rate,
	).Error
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, default_rate FROM catalog_items WHERE name = ?`,
		name,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	err := db.WithContext(ctx).
		Model(&domain.CatalogItem{}).
		Order("name asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Rename(ctx context.Context, db *gorm.DB, oldName, newName string, rate decimal.Decimal) (int64, error) {
	result := db.WithContext(ctx).Exec(
		`UPDATE catalog_items SET name = ?, default_rate = ? WHERE name = ?`,
		newName,
		rate,
		oldName,
	)
	return result.RowsAffected, result.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, name string) (int64, error) {
	result := db.WithContext(ctx).Exec(`DELETE FROM catalog_items WHERE name = ?`, name)
	return result.RowsAffected, result.Error
}
