package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	appconfig "github.com/vivekrupapara/chalan/internal/config"
	invoicedomain "github.com/vivekrupapara/chalan/internal/invoice/domain"
	"github.com/vivekrupapara/chalan/internal/observability/metrics"
	"github.com/vivekrupapara/chalan/internal/settings"
	"go.uber.org/zap"
)

func newTestRenderer(t *testing.T) (Renderer, string) {
	t.Helper()

	dir := t.TempDir()
	r := NewRenderer(RendererParam{
		Config:  appconfig.Config{PDFDir: dir},
		Log:     zap.NewNop(),
		Metrics: metrics.New(),
	})
	return r, dir
}

func sampleInvoice() invoicedomain.Invoice {
	return invoicedomain.Invoice{
		ChalanNo:   42,
		PartyName:  "Shree Traders",
		City:       "Rajkot",
		LRNo:       "LR-204",
		Date:       "2025-04-01",
		TaxPercent: decimal.NewFromInt(5),
		PandF:      decimal.NewFromInt(10),
		Subtotal:   decimal.RequireFromString("351.00"),
		TaxAmount:  decimal.RequireFromString("17.55"),
		GrandTotal: decimal.RequireFromString("378.55"),
		Items: []invoicedomain.InvoiceItem{
			{Sr: 1, ItemName: "Box", Qty: decimal.RequireFromString("2.5"), Rate: decimal.NewFromInt(100), Amount: decimal.NewFromInt(250)},
			{Sr: 2, ItemName: "Plywood Sheet\n6x4", Qty: decimal.NewFromInt(2), Rate: decimal.RequireFromString("50.50"), Amount: decimal.NewFromInt(101)},
		},
	}
}

func TestRender_WritesDeterministicFile(t *testing.T) {
	r, dir := newTestRenderer(t)

	path, err := r.Render(context.Background(), sampleInvoice(), settings.Defaults)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Invoice_42.pdf"), path)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRender_OverwritesOnRerender(t *testing.T) {
	r, _ := newTestRenderer(t)
	ctx := context.Background()

	first, err := r.Render(ctx, sampleInvoice(), settings.Defaults)
	assert.NoError(t, err)

	second, err := r.Render(ctx, sampleInvoice(), settings.Defaults)
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(filepath.Dir(first))
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRender_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "pdf")
	r := NewRenderer(RendererParam{
		Config:  appconfig.Config{PDFDir: dir},
		Log:     zap.NewNop(),
		Metrics: metrics.New(),
	})

	_, err := r.Render(context.Background(), sampleInvoice(), settings.Defaults)
	assert.NoError(t, err)
}

func TestRender_ManyItemsPaginate(t *testing.T) {
	r, _ := newTestRenderer(t)

	inv := sampleInvoice()
	inv.Items = nil
	for i := 1; i <= 60; i++ {
		inv.Items = append(inv.Items, invoicedomain.InvoiceItem{
			Sr:       i,
			ItemName: "Item",
			Qty:      decimal.NewFromInt(1),
			Rate:     decimal.NewFromInt(10),
			Amount:   decimal.NewFromInt(10),
		})
	}

	path, err := r.Render(context.Background(), inv, settings.Defaults)
	assert.NoError(t, err)

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Invoice_7.pdf", Filename(7))
	assert.Equal(t, "Invoice_1234.pdf", Filename(1234))
}

func TestFormatQty_TrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "2", FormatQty(decimal.RequireFromString("2.000")))
	assert.Equal(t, "2.5", FormatQty(decimal.RequireFromString("2.500")))
	assert.Equal(t, "0.125", FormatQty(decimal.RequireFromString("0.125")))
}

func TestNameLines(t *testing.T) {
	assert.Equal(t, []string{"Box"}, nameLines("  Box  "))
	assert.Equal(t, []string{"Plywood Sheet", "6x4"}, nameLines("Plywood Sheet\r\n6x4"))
	assert.Equal(t, []string{"-"}, nameLines("   "))
}
