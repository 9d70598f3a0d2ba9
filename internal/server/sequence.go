package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) CurrentNumber(c *gin.Context) {
	current, err := s.sequenceSvc.Current(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"last_issued": current}})
}

func (s *Server) NextNumber(c *gin.Context) {
	next, err := s.sequenceSvc.Next(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"chalan_no": next}})
}

type resetRequest struct {
	To    int64 `json:"to"`
	Force bool  `json:"force"`
}

func (s *Server) ResetCounter(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.sequenceSvc.Reset(c.Request.Context(), req.To, req.Force); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"next_issued": req.To + 1}})
}
