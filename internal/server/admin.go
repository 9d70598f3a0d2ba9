package server

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vivekrupapara/chalan/internal/settings"
	"github.com/vivekrupapara/chalan/internal/transfer"
)

func (s *Server) GetSettings(c *gin.Context) {
	cfg, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": cfg})
}

func (s *Server) SaveSettings(c *gin.Context) {
	var req settings.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.settingsSvc.Save(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": req})
}

type exportRequest struct {
	Path string `json:"path"`
}

func (s *Server) ExportCSV(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		req.Path = filepath.Join(s.cfg.ExportDir, "invoices.csv")
	}

	invoicesPath, itemsPath, err := s.transferSvc.ExportCSV(c.Request.Context(), req.Path)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"invoices": invoicesPath,
		"items":    itemsPath,
	}})
}

type importRequest struct {
	InvoicesPath string `json:"invoices_path"`
	ItemsPath    string `json:"items_path"`
}

func (s *Server) ImportCSV(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.InvoicesPath) == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	if strings.TrimSpace(req.ItemsPath) == "" {
		req.ItemsPath = transfer.ItemsPath(req.InvoicesPath)
	}

	imported, err := s.transferSvc.ImportCSV(c.Request.Context(), req.InvoicesPath, req.ItemsPath)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"imported": imported}})
}

type backupRequest struct {
	Dir string `json:"dir"`
}

func (s *Server) BackupDatabase(c *gin.Context) {
	var req backupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	if strings.TrimSpace(req.Dir) == "" {
		req.Dir = s.cfg.ExportDir
	}

	dest, err := s.backupSvc.Run(c.Request.Context(), req.Dir)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"path": dest}})
}
