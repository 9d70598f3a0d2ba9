package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (s *Server) ListCatalog(c *gin.Context) {
	items, err := s.catalogSvc.ListAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

type upsertCatalogRequest struct {
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

// UpsertCatalogItem is the side-effect hook the entry UI calls whenever a line
// item is added: the catalog keeps the last used rate per name.
func (s *Server) UpsertCatalogItem(c *gin.Context) {
	var req upsertCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.catalogSvc.Upsert(c.Request.Context(), req.Name, req.Rate); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"name": req.Name}})
}

type renameCatalogRequest struct {
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

func (s *Server) RenameCatalogItem(c *gin.Context) {
	var req renameCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.catalogSvc.Rename(c.Request.Context(), c.Param("name"), req.Name, req.Rate); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"name": req.Name}})
}

func (s *Server) DeleteCatalogItem(c *gin.Context) {
	if err := s.catalogSvc.Delete(c.Request.Context(), c.Param("name")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
