// Package transfer implements flat-file bulk export and import of invoices:
// one CSV with all headers and a sibling CSV with all line items.
package transfer

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	invoicedomain "github.com/vivekrupapara/chalan/internal/invoice/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var invoiceHeader = []string{
	"id", "chalan_no", "party_name", "city", "lr_no", "dt",
	"tax_percent", "pandf", "subtotal", "tax_amount", "grand_total",
}

var itemHeader = []string{
	"id", "invoice_id", "sr", "item_name", "qty", "rate", "amount",
}

type Service interface {
	// ExportCSV writes every invoice header to path and every line item to a
	// sibling <base>_items.csv. Returns both written paths.
	ExportCSV(ctx context.Context, path string) (string, string, error)
	// ImportCSV loads headers and items from the two files. Header rows whose
	// chalan number already exists are skipped and the stored row is left
	// untouched. Returns the number of imported invoices.
	ImportCSV(ctx context.Context, invoicesPath, itemsPath string) (int, error)
}

type ServiceParam struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo invoicedomain.Repository
}

type service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo invoicedomain.Repository
}

func NewService(p ServiceParam) Service {
	return &service{
		db:   p.DB,
		log:  p.Log.Named("transfer.service"),
		repo: p.Repo,
	}
}

// ItemsPath derives the sibling line item file for an invoices CSV path.
func ItemsPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "_items.csv"
}

func (s *service) ExportCSV(ctx context.Context, path string) (string, string, error) {
	invoices, err := s.repo.List(ctx, s.db)
	if err != nil {
		return "", "", err
	}
	items, err := s.repo.ListItems(ctx, s.db)
	if err != nil {
		return "", "", err
	}

	invoiceRows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		invoiceRows = append(invoiceRows, []string{
			strconv.FormatInt(inv.ID, 10),
			strconv.FormatInt(inv.ChalanNo, 10),
			inv.PartyName,
			inv.City,
			inv.LRNo,
			inv.Date,
			inv.TaxPercent.String(),
			inv.PandF.String(),
			inv.Subtotal.String(),
			inv.TaxAmount.String(),
			inv.GrandTotal.String(),
		})
	}
	if err := writeCSV(path, invoiceHeader, invoiceRows); err != nil {
		return "", "", err
	}

	itemRows := make([][]string, 0, len(items))
	for _, item := range items {
		itemRows = append(itemRows, []string{
			strconv.FormatInt(item.ID, 10),
			strconv.FormatInt(item.InvoiceID, 10),
			strconv.Itoa(item.Sr),
			item.ItemName,
			item.Qty.String(),
			item.Rate.String(),
			item.Amount.String(),
		})
	}
	itemsPath := ItemsPath(path)
	if err := writeCSV(itemsPath, itemHeader, itemRows); err != nil {
		return "", "", err
	}

	s.log.Info("invoices exported",
		zap.Int("invoices", len(invoiceRows)),
		zap.Int("items", len(itemRows)),
		zap.String("path", path),
	)
	return path, itemsPath, nil
}

func (s *service) ImportCSV(ctx context.Context, invoicesPath, itemsPath string) (int, error) {
	headerRows, err := readCSV(invoicesPath, len(invoiceHeader))
	if err != nil {
		return 0, err
	}
	itemRows, err := readCSV(itemsPath, len(itemHeader))
	if err != nil {
		return 0, err
	}

	// Items in the file reference the exporting database's invoice ids; group
	// them up front so each imported header adopts its own items under the
	// freshly assigned id.
	itemsByOldID := make(map[int64][]invoicedomain.InvoiceItem)
	for _, row := range itemRows {
		oldID, err := strconv.ParseInt(row[1], 10, 64)
		if err != nil {
			continue
		}
		sr, _ := strconv.Atoi(row[2])
		itemsByOldID[oldID] = append(itemsByOldID[oldID], invoicedomain.InvoiceItem{
			Sr:       sr,
			ItemName: row[3],
			Qty:      parseDecimal(row[4]),
			Rate:     parseDecimal(row[5]),
			Amount:   parseDecimal(row[6]),
		})
	}

	imported := 0
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range headerRows {
			oldID, err := strconv.ParseInt(row[0], 10, 64)
			if err != nil {
				continue
			}
			chalanNo, err := strconv.ParseInt(row[1], 10, 64)
			if err != nil {
				continue
			}

			existing, err := s.repo.FindByChalan(ctx, tx, chalanNo)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}

			invoice := invoicedomain.Invoice{
				ChalanNo:   chalanNo,
				PartyName:  row[2],
				City:       row[3],
				LRNo:       row[4],
				Date:       row[5],
				TaxPercent: parseDecimal(row[6]),
				PandF:      parseDecimal(row[7]),
				Subtotal:   parseDecimal(row[8]),
				TaxAmount:  parseDecimal(row[9]),
				GrandTotal: parseDecimal(row[10]),
			}
			if err := s.repo.Insert(ctx, tx, &invoice); err != nil {
				return err
			}

			items := itemsByOldID[oldID]
			for i := range items {
				items[i].ID = 0
				items[i].InvoiceID = invoice.ID
			}
			if err := s.repo.InsertItems(ctx, tx, items); err != nil {
				return err
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("invoices imported", zap.Int("imported", imported))
	return imported, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// readCSV reads all records, skipping the header row and any row with fewer
// than want columns.
func readCSV(path string, want int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("import csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("import csv: %w", err)
	}

	var rows [][]string
	for i, record := range records {
		if i == 0 || len(record) < want {
			continue
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func parseDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

var Module = fx.Module("transfer.service",
	fx.Provide(NewService),
)
