package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/vivekrupapara/chalan/internal/invoice/domain"
)

func (s *Server) ListInvoices(c *gin.Context) {
	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoices})
}

func (s *Server) SaveInvoice(c *gin.Context) {
	var req invoicedomain.SaveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	invoice, err := s.invoiceSvc.Save(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": invoice})
}

func (s *Server) GetInvoiceByChalan(c *gin.Context) {
	chalanNo, ok := chalanParam(c)
	if !ok {
		return
	}

	invoice, err := s.invoiceSvc.GetByChalan(c.Request.Context(), chalanNo)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoice})
}

func (s *Server) RenderInvoicePDF(c *gin.Context) {
	chalanNo, ok := chalanParam(c)
	if !ok {
		return
	}

	invoice, err := s.invoiceSvc.GetByChalan(c.Request.Context(), chalanNo)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	cfg, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	path, err := s.renderer.Render(c.Request.Context(), invoice, cfg)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"path": path}})
}

func chalanParam(c *gin.Context) (int64, bool) {
	raw := strings.TrimSpace(c.Param("chalan"))
	chalanNo, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || chalanNo <= 0 {
		AbortWithError(c, ErrInvalidRequest)
		return 0, false
	}
	return chalanNo, true
}
