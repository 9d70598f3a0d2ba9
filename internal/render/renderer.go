// Package render turns a finalized invoice into a paginated A5 PDF.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	appconfig "github.com/vivekrupapara/chalan/internal/config"
	invoicedomain "github.com/vivekrupapara/chalan/internal/invoice/domain"
	"github.com/vivekrupapara/chalan/internal/observability/metrics"
	"github.com/vivekrupapara/chalan/internal/settings"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Renderer writes one PDF per invoice into the configured output directory.
type Renderer interface {
	// Render emits Invoice_<chalan>.pdf and returns the written path.
	// Re-rendering the same invoice overwrites the previous file.
	Render(ctx context.Context, invoice invoicedomain.Invoice, s settings.Settings) (string, error)
}

type RendererParam struct {
	fx.In

	Config  appconfig.Config
	Log     *zap.Logger
	Metrics *metrics.Metrics
}

type renderer struct {
	cfg     appconfig.Config
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewRenderer(p RendererParam) Renderer {
	return &renderer{
		cfg:     p.Config,
		log:     p.Log.Named("render"),
		metrics: p.Metrics,
	}
}

// 12-column grid split: narrow serial, wide name, three numeric columns.
const (
	colSr     = 1
	colName   = 6
	colQty    = 1
	colRate   = 2
	colAmount = 2
)

func (r *renderer) Render(ctx context.Context, invoice invoicedomain.Invoice, s settings.Settings) (string, error) {
	_ = ctx

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).
		WithRightMargin(10).
		WithTopMargin(15).
		WithBottomMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	if s.LogoPath != "" {
		if _, err := os.Stat(s.LogoPath); err == nil {
			m.AddRow(30,
				image.NewFromFileCol(3, s.LogoPath, props.Rect{
					Center:  false,
					Percent: 80,
				}),
				col.New(9),
			)
		}
	}

	m.AddRow(10,
		text.NewCol(12, s.CompanyName, props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)
	m.AddRow(6,
		text.NewCol(12, s.CompanyCity+" | MOB: "+s.CompanyMobile, props.Text{
			Size:  9,
			Align: align.Center,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New("Chalan No: "+strconv.FormatInt(invoice.ChalanNo, 10), props.Text{Top: 0, Size: 9}),
			text.New("Party: "+invoice.PartyName, props.Text{Top: 5, Size: 9}),
			text.New("City: "+invoice.City, props.Text{Top: 10, Size: 9}),
		),
		col.New(6).Add(
			text.New("Date: "+invoice.Date, props.Text{Top: 0, Size: 9}),
			text.New("L.R. No: "+invoice.LRNo, props.Text{Top: 5, Size: 9}),
		),
	)

	r.addItemTable(m, invoice)

	m.AddRow(6, col.New(12))
	m.AddRow(18,
		col.New(12).Add(
			text.New("A/C NAME : "+s.BankACName, props.Text{Top: 0, Size: 9}),
			text.New("BANK NAME : "+s.BankName, props.Text{Top: 4, Size: 9}),
			text.New("A/C NO : "+s.BankACNo+"    IFSC : "+s.BankIFSC, props.Text{Top: 8, Size: 9}),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return "", fmt.Errorf("render invoice %d: %w", invoice.ChalanNo, err)
	}

	if err := os.MkdirAll(r.cfg.PDFDir, 0o755); err != nil {
		return "", fmt.Errorf("render invoice %d: %w", invoice.ChalanNo, err)
	}
	path := filepath.Join(r.cfg.PDFDir, Filename(invoice.ChalanNo))
	if err := os.WriteFile(path, doc.GetBytes(), 0o644); err != nil {
		return "", fmt.Errorf("render invoice %d: %w", invoice.ChalanNo, err)
	}

	r.metrics.DocumentsRendered.Inc()
	r.log.Info("invoice rendered",
		zap.Int64("chalan_no", invoice.ChalanNo),
		zap.String("path", path),
	)
	return path, nil
}

func (r *renderer) addItemTable(m core.Maroto, invoice invoicedomain.Invoice) {
	grid := &props.Cell{BorderType: border.Full}

	m.AddRow(7,
		text.NewCol(colSr, "Sr", headerText()),
		text.NewCol(colName, "Item Name", headerText()),
		text.NewCol(colQty, "Qty", headerTextRight()),
		text.NewCol(colRate, "Rate", headerTextRight()),
		text.NewCol(colAmount, "Amount", headerTextRight()),
	).WithStyle(grid)

	for _, item := range invoice.Items {
		lines := nameLines(item.ItemName)
		height := float64(6 + 4*(len(lines)-1))

		nameCol := col.New(colName)
		for i, line := range lines {
			nameCol.Add(text.New(line, props.Text{Size: 9, Top: float64(4 * i)}))
		}

		m.AddRow(height,
			text.NewCol(colSr, strconv.Itoa(item.Sr), cellText()),
			nameCol,
			text.NewCol(colQty, FormatQty(item.Qty), cellTextRight()),
			text.NewCol(colRate, item.Rate.StringFixed(2), cellTextRight()),
			text.NewCol(colAmount, item.Amount.StringFixed(2), cellTextRight()),
		).WithStyle(grid)
	}

	// Totals block: label spans the serial and name columns.
	summary := [][2]string{
		{"Sub Total", invoice.Subtotal.StringFixed(2)},
		{fmt.Sprintf("Tax %s%%", invoice.TaxPercent.StringFixed(2)), invoice.TaxAmount.StringFixed(2)},
		{"P & F", invoice.PandF.StringFixed(2)},
		{"Grand Total", invoice.GrandTotal.StringFixed(2)},
	}
	for _, row := range summary {
		m.AddRow(6,
			col.New(colSr+colName+colQty),
			text.NewCol(colRate, row[0], cellTextRight()),
			text.NewCol(colAmount, row[1], cellTextRight()),
		).WithStyle(grid)
	}
}

// Filename derives the deterministic output name for a chalan number.
func Filename(chalanNo int64) string {
	return fmt.Sprintf("Invoice_%d.pdf", chalanNo)
}

// FormatQty renders a quantity without forced decimal places.
func FormatQty(qty decimal.Decimal) string {
	return strconv.FormatFloat(qty.InexactFloat64(), 'f', -1, 64)
}

// nameLines splits an item name so embedded newlines become separate lines in
// the cell. maroto draws plain text, so no further escaping is needed.
func nameLines(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return []string{"-"}
	}
	lines := strings.Split(strings.ReplaceAll(name, "\r\n", "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}

func headerText() props.Text {
	return props.Text{Size: 9, Style: fontstyle.Bold}
}

func headerTextRight() props.Text {
	t := headerText()
	t.Align = align.Right
	return t
}

func cellText() props.Text {
	return props.Text{Size: 9}
}

func cellTextRight() props.Text {
	t := cellText()
	t.Align = align.Right
	return t
}

var Module = fx.Module("render",
	fx.Provide(NewRenderer),
)
