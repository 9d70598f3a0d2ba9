package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/vivekrupapara/chalan/internal/catalog/domain"
	invoicedomain "github.com/vivekrupapara/chalan/internal/invoice/domain"
	sequencedomain "github.com/vivekrupapara/chalan/internal/sequence/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware maps domain errors recorded on the context to HTTP
// statuses after the handler chain finishes.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, invoicedomain.ErrDuplicateChalan):
		return http.StatusConflict, errorPayload{
			Type:    "duplicate_chalan",
			Message: "chalan number already exists, allocate a new number",
		}
	case errors.Is(err, sequencedomain.ErrResetBelowMax):
		return http.StatusConflict, errorPayload{
			Type:    "reset_below_stored_max",
			Message: "reset target is below the highest stored chalan number",
		}
	case errors.Is(err, catalogdomain.ErrNameExists):
		return http.StatusConflict, errorPayload{
			Type:    "catalog_name_exists",
			Message: "catalog item already exists",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, invoicedomain.ErrInvalidChalan),
		errors.Is(err, invoicedomain.ErrNoItems),
		errors.Is(err, invoicedomain.ErrItemNameRequired),
		errors.Is(err, invoicedomain.ErrInvalidQuantity),
		errors.Is(err, invoicedomain.ErrInvalidRate),
		errors.Is(err, invoicedomain.ErrInvalidTaxPercent),
		errors.Is(err, invoicedomain.ErrInvalidPandF),
		errors.Is(err, sequencedomain.ErrInvalidReset),
		errors.Is(err, catalogdomain.ErrNameRequired),
		errors.Is(err, catalogdomain.ErrInvalidRate):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
