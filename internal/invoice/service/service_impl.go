package service

import (
	"context"

	"github.com/vivekrupapara/chalan/internal/invoice/domain"
	"github.com/vivekrupapara/chalan/internal/invoice/totals"
	"github.com/vivekrupapara/chalan/internal/observability/metrics"
	"github.com/vivekrupapara/chalan/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Repo    domain.Repository
	Metrics *metrics.Metrics
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    domain.Repository
	metrics *metrics.Metrics
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("invoice.service"),
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

// Save validates the request, derives totals and persists the header plus all
// items in one transaction. Item serials are reassigned 1..n from list order.
func (s *Service) Save(ctx context.Context, req domain.SaveInvoiceRequest) (domain.Invoice, error) {
	if err := validate(req); err != nil {
		return domain.Invoice{}, err
	}

	lines := make([]totals.Line, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, totals.Line{Quantity: item.Qty, Rate: item.Rate})
	}
	t := totals.Compute(lines, req.TaxPercent, req.PandF)

	invoice := domain.Invoice{
		ChalanNo:   req.ChalanNo,
		PartyName:  req.PartyName,
		City:       req.City,
		LRNo:       req.LRNo,
		Date:       req.Date,
		TaxPercent: req.TaxPercent.Round(2),
		PandF:      req.PandF.Round(2),
		Subtotal:   t.Subtotal,
		TaxAmount:  t.TaxAmount,
		GrandTotal: t.GrandTotal,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, &invoice); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrDuplicateChalan
			}
			return err
		}

		items := make([]domain.InvoiceItem, 0, len(req.Items))
		for idx, item := range req.Items {
			items = append(items, domain.InvoiceItem{
				InvoiceID: invoice.ID,
				Sr:        idx + 1,
				ItemName:  item.ItemName,
				Qty:       item.Qty,
				Rate:      item.Rate,
				Amount:    totals.Amount(item.Qty, item.Rate),
			})
		}
		if err := s.repo.InsertItems(ctx, tx, items); err != nil {
			return err
		}
		invoice.Items = items
		return nil
	})
	if err != nil {
		return domain.Invoice{}, err
	}

	s.metrics.InvoicesSaved.Inc()
	s.log.Info("invoice saved",
		zap.Int64("chalan_no", invoice.ChalanNo),
		zap.Int("items", len(invoice.Items)),
		zap.String("grand_total", invoice.GrandTotal.StringFixed(2)),
	)
	return invoice, nil
}

func (s *Service) GetByChalan(ctx context.Context, chalanNo int64) (domain.Invoice, error) {
	invoice, err := s.repo.FindByChalan(ctx, s.db, chalanNo)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice == nil {
		return domain.Invoice{}, domain.ErrNotFound
	}

	items, err := s.repo.ItemsByInvoice(ctx, s.db, invoice.ID)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.Items = items
	return *invoice, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Invoice, error) {
	return s.repo.List(ctx, s.db)
}

// validate rejects the request before any totals are computed or persisted.
func validate(req domain.SaveInvoiceRequest) error {
	if req.ChalanNo <= 0 {
		return domain.ErrInvalidChalan
	}
	if len(req.Items) == 0 {
		return domain.ErrNoItems
	}
	if req.TaxPercent.IsNegative() {
		return domain.ErrInvalidTaxPercent
	}
	if req.PandF.IsNegative() {
		return domain.ErrInvalidPandF
	}
	for _, item := range req.Items {
		if item.ItemName == "" {
			return domain.ErrItemNameRequired
		}
		if !item.Qty.IsPositive() {
			return domain.ErrInvalidQuantity
		}
		if item.Rate.IsNegative() {
			return domain.ErrInvalidRate
		}
	}
	return nil
}
