package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vivekrupapara/chalan/internal/catalog/domain"
	pkgdb "github.com/vivekrupapara/chalan/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("catalog.service"),
		repo: p.Repo,
	}
}

func (s *Service) Upsert(ctx context.Context, name string, rate decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrNameRequired
	}
	if rate.IsNegative() {
		return domain.ErrInvalidRate
	}
	return s.repo.Upsert(ctx, s.db, name, rate.Round(2))
}

func (s *Service) LookupRate(ctx context.Context, name string) (*decimal.Decimal, error) {
	item, err := s.repo.FindByName(ctx, s.db, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	rate := item.DefaultRate
	return &rate, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.CatalogItem, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Rename(ctx context.Context, oldName, newName string, rate decimal.Decimal) error {
	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		return domain.ErrNameRequired
	}
	if rate.IsNegative() {
		return domain.ErrInvalidRate
	}

	affected, err := s.repo.Rename(ctx, s.db, oldName, newName, rate.Round(2))
	if err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.ErrNameExists
		}
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, name string) error {
	affected, err := s.repo.Delete(ctx, s.db, strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
