package repository

import (
	"context"

	"github.com/vivekrupapara/chalan/internal/meta/domain"
	"gorm.io/gorm"
)

type repo struct{}

// Provide returns the meta repository.
func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Get(ctx context.Context, db *gorm.DB, key string) (*string, error) {
	type row struct {
		Value string `gorm:"column:value"`
		Found int    `gorm:"column:found"`
	}

	var out row
	err := db.WithContext(ctx).
		Raw(`SELECT value, 1 AS found FROM meta WHERE key = ?`, key).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if out.Found == 0 {
		return nil, nil
	}
	value := out.Value
	return &value, nil
}

func (r *repo) GetDefault(ctx context.Context, db *gorm.DB, key, fallback string) (string, error) {
	value, err := r.Get(ctx, db, key)
	if err != nil {
		return "", err
	}
	if value == nil {
		return fallback, nil
	}
	return *value, nil
}

func (r *repo) Set(ctx context.Context, db *gorm.DB, key, value string) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key,
		value,
	).Error
}

func (r *repo) SetIfAbsent(ctx context.Context, db *gorm.DB, key, value string) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO NOTHING`,
		key,
		value,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, key string) error {
	return db.WithContext(ctx).Exec(`DELETE FROM meta WHERE key = ?`, key).Error
}
