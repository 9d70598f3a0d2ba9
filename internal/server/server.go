package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vivekrupapara/chalan/internal/backup"
	"github.com/vivekrupapara/chalan/internal/catalog"
	catalogdomain "github.com/vivekrupapara/chalan/internal/catalog/domain"
	"github.com/vivekrupapara/chalan/internal/config"
	"github.com/vivekrupapara/chalan/internal/invoice"
	invoicedomain "github.com/vivekrupapara/chalan/internal/invoice/domain"
	"github.com/vivekrupapara/chalan/internal/meta"
	"github.com/vivekrupapara/chalan/internal/observability/metrics"
	"github.com/vivekrupapara/chalan/internal/render"
	"github.com/vivekrupapara/chalan/internal/sequence"
	sequencedomain "github.com/vivekrupapara/chalan/internal/sequence/domain"
	"github.com/vivekrupapara/chalan/internal/settings"
	"github.com/vivekrupapara/chalan/internal/transfer"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module wires every feature the collaborator surface exposes.
var Module = fx.Module("http.server",
	meta.Module,
	invoice.Module,
	sequence.Module,
	catalog.Module,
	settings.Module,
	render.Module,
	transfer.Module,
	backup.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = ctx
			log.Info("listening", zap.String("addr", cfg.ListenAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	invoiceSvc  invoicedomain.Service
	sequenceSvc sequencedomain.Service
	catalogSvc  catalogdomain.Service
	settingsSvc settings.Service
	renderer    render.Renderer
	transferSvc transfer.Service
	backupSvc   backup.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	InvoiceSvc  invoicedomain.Service
	SequenceSvc sequencedomain.Service
	CatalogSvc  catalogdomain.Service
	SettingsSvc settings.Service
	Renderer    render.Renderer
	TransferSvc transfer.Service
	BackupSvc   backup.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		invoiceSvc:  p.InvoiceSvc,
		sequenceSvc: p.SequenceSvc,
		catalogSvc:  p.CatalogSvc,
		settingsSvc: p.SettingsSvc,
		renderer:    p.Renderer,
		transferSvc: p.TransferSvc,
		backupSvc:   p.BackupSvc,
	}
}

func registerRoutes(s *Server) {
	api := s.engine.Group("/api")

	api.GET("/invoices", s.ListInvoices)
	api.POST("/invoices", s.SaveInvoice)
	api.GET("/invoices/:chalan", s.GetInvoiceByChalan)
	api.POST("/invoices/:chalan/pdf", s.RenderInvoicePDF)

	api.GET("/sequence", s.CurrentNumber)
	api.POST("/sequence/next", s.NextNumber)
	api.POST("/sequence/reset", s.ResetCounter)

	api.GET("/catalog", s.ListCatalog)
	api.POST("/catalog", s.UpsertCatalogItem)
	api.POST("/catalog/:name", s.RenameCatalogItem)
	api.DELETE("/catalog/:name", s.DeleteCatalogItem)

	api.GET("/settings", s.GetSettings)
	api.PUT("/settings", s.SaveSettings)

	api.POST("/export", s.ExportCSV)
	api.POST("/import", s.ImportCSV)
	api.POST("/backup", s.BackupDatabase)
}
