package service

import (
	"context"
	"strconv"
	"strings"

	invoicedomain "github.com/vivekrupapara/chalan/internal/invoice/domain"
	metadomain "github.com/vivekrupapara/chalan/internal/meta/domain"
	"github.com/vivekrupapara/chalan/internal/observability/metrics"
	"github.com/vivekrupapara/chalan/internal/sequence/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	MetaRepo    metadomain.Repository
	InvoiceRepo invoicedomain.Repository
	Metrics     *metrics.Metrics
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	metaRepo    metadomain.Repository
	invoiceRepo invoicedomain.Repository
	metrics     *metrics.Metrics
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("sequence.service"),
		metaRepo:    p.MetaRepo,
		invoiceRepo: p.InvoiceRepo,
		metrics:     p.Metrics,
	}
}

func (s *Service) Next(ctx context.Context) (int64, error) {
	var next int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, recovered, err := s.currentTx(ctx, tx)
		if err != nil {
			return err
		}
		if recovered {
			s.metrics.CounterRecoveries.Inc()
		}

		next = current + 1
		return s.metaRepo.Set(ctx, tx, domain.MetaKey, strconv.FormatInt(next, 10))
	})
	if err != nil {
		return 0, err
	}

	s.metrics.NumbersIssued.Inc()
	return next, nil
}

func (s *Service) Current(ctx context.Context) (int64, error) {
	current, _, err := s.currentTx(ctx, s.db)
	return current, err
}

func (s *Service) Reset(ctx context.Context, to int64, force bool) error {
	if to < 0 {
		return domain.ErrInvalidReset
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !force {
			max, err := s.invoiceRepo.MaxChalan(ctx, tx)
			if err != nil {
				return err
			}
			if to < max {
				return domain.ErrResetBelowMax
			}
		}

		if err := s.metaRepo.Set(ctx, tx, domain.MetaKey, strconv.FormatInt(to, 10)); err != nil {
			return err
		}
		s.log.Info("chalan counter reset", zap.Int64("to", to), zap.Bool("force", force))
		return nil
	})
}

// currentTx reads the counter, falling back to the stored invoice maximum when
// the row is missing or holds a non-numeric value. The recovered baseline is
// not persisted here; Next persists the incremented value.
func (s *Service) currentTx(ctx context.Context, tx *gorm.DB) (int64, bool, error) {
	raw, err := s.metaRepo.Get(ctx, tx, domain.MetaKey)
	if err != nil {
		return 0, false, err
	}

	if raw != nil {
		value, parseErr := strconv.ParseInt(strings.TrimSpace(*raw), 10, 64)
		if parseErr == nil {
			return value, false, nil
		}
		s.log.Warn("corrupt chalan counter, recovering from stored invoices",
			zap.String("raw", *raw),
		)
	}

	max, err := s.invoiceRepo.MaxChalan(ctx, tx)
	if err != nil {
		return 0, false, err
	}
	return max, true, nil
}
