package transfer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	invoicedomain "github.com/vivekrupapara/chalan/internal/invoice/domain"
	invoicerepo "github.com/vivekrupapara/chalan/internal/invoice/repository"
	invoicesvc "github.com/vivekrupapara/chalan/internal/invoice/service"
	"github.com/vivekrupapara/chalan/internal/migration"
	"github.com/vivekrupapara/chalan/internal/observability/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, migration.Run(db))
	return db
}

func newTransfer(t *testing.T, db *gorm.DB) Service {
	t.Helper()

	return NewService(ServiceParam{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: invoicerepo.Provide(),
	})
}

func newInvoiceService(t *testing.T, db *gorm.DB) invoicedomain.Service {
	t.Helper()

	return invoicesvc.NewService(invoicesvc.ServiceParam{
		DB:      db,
		Log:     zap.NewNop(),
		Repo:    invoicerepo.Provide(),
		Metrics: metrics.New(),
	})
}

func saveSample(t *testing.T, svc invoicedomain.Service, chalanNo int64) {
	t.Helper()

	_, err := svc.Save(context.Background(), invoicedomain.SaveInvoiceRequest{
		ChalanNo:   chalanNo,
		PartyName:  "Shree Traders",
		City:       "Rajkot",
		LRNo:       "LR-204",
		Date:       "2025-04-01",
		TaxPercent: decimal.NewFromInt(5),
		PandF:      decimal.NewFromInt(10),
		Items: []invoicedomain.LineItemInput{
			{ItemName: "Box", Qty: decimal.RequireFromString("2.5"), Rate: decimal.NewFromInt(100)},
			{ItemName: "Carton", Qty: decimal.NewFromInt(3), Rate: decimal.RequireFromString("40.40")},
		},
	})
	assert.NoError(t, err)
}

func TestItemsPath(t *testing.T) {
	assert.Equal(t, "export/invoices_items.csv", ItemsPath("export/invoices.csv"))
	assert.Equal(t, "dump_items.csv", ItemsPath("dump.csv"))
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := openTestDB(t)
	invoices := newInvoiceService(t, src)
	saveSample(t, invoices, 1)
	saveSample(t, invoices, 2)

	path := filepath.Join(t.TempDir(), "invoices.csv")
	invoicesPath, itemsPath, err := newTransfer(t, src).ExportCSV(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, path, invoicesPath)
	assert.Equal(t, ItemsPath(path), itemsPath)

	dst := openTestDB(t)
	imported, err := newTransfer(t, dst).ImportCSV(context.Background(), invoicesPath, itemsPath)
	assert.NoError(t, err)
	assert.Equal(t, 2, imported)

	original, err := newInvoiceService(t, src).GetByChalan(context.Background(), 2)
	assert.NoError(t, err)
	restored, err := newInvoiceService(t, dst).GetByChalan(context.Background(), 2)
	assert.NoError(t, err)

	assert.Equal(t, original.PartyName, restored.PartyName)
	assert.Equal(t, original.Date, restored.Date)
	assert.True(t, restored.GrandTotal.Equal(original.GrandTotal))
	assert.Len(t, restored.Items, len(original.Items))
	for i := range original.Items {
		assert.Equal(t, original.Items[i].Sr, restored.Items[i].Sr)
		assert.Equal(t, original.Items[i].ItemName, restored.Items[i].ItemName)
		assert.True(t, restored.Items[i].Amount.Equal(original.Items[i].Amount))
	}
}

func TestImport_SkipsExistingChalans(t *testing.T) {
	src := openTestDB(t)
	saveSample(t, newInvoiceService(t, src), 7)

	path := filepath.Join(t.TempDir(), "invoices.csv")
	invoicesPath, itemsPath, err := newTransfer(t, src).ExportCSV(context.Background(), path)
	assert.NoError(t, err)

	dst := openTestDB(t)
	stored := newInvoiceService(t, dst)
	_, err = stored.Save(context.Background(), invoicedomain.SaveInvoiceRequest{
		ChalanNo:  7,
		PartyName: "Kept Party",
		Items: []invoicedomain.LineItemInput{
			{ItemName: "Angle", Qty: decimal.NewFromInt(1), Rate: decimal.NewFromInt(25)},
		},
	})
	assert.NoError(t, err)

	imported, err := newTransfer(t, dst).ImportCSV(context.Background(), invoicesPath, itemsPath)
	assert.NoError(t, err)
	assert.Equal(t, 0, imported)

	inv, err := stored.GetByChalan(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "Kept Party", inv.PartyName)
	assert.Len(t, inv.Items, 1)
}

func TestImport_ReparentsItems(t *testing.T) {
	src := openTestDB(t)
	invoices := newInvoiceService(t, src)
	saveSample(t, invoices, 1)
	saveSample(t, invoices, 2)

	path := filepath.Join(t.TempDir(), "invoices.csv")
	invoicesPath, itemsPath, err := newTransfer(t, src).ExportCSV(context.Background(), path)
	assert.NoError(t, err)

	// The destination already holds an unrelated invoice, so imported headers
	// get different row ids than the ones recorded in the file.
	dst := openTestDB(t)
	saveSample(t, newInvoiceService(t, dst), 99)

	imported, err := newTransfer(t, dst).ImportCSV(context.Background(), invoicesPath, itemsPath)
	assert.NoError(t, err)
	assert.Equal(t, 2, imported)

	for _, chalanNo := range []int64{1, 2} {
		inv, err := newInvoiceService(t, dst).GetByChalan(context.Background(), chalanNo)
		assert.NoError(t, err)
		assert.Len(t, inv.Items, 2)
	}
}
