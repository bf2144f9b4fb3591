package handlers

import (
	"errors"
	"log"
	"net/http"

	"energy-package-roi/internal/api/models"
	"energy-package-roi/internal/model"
	"energy-package-roi/internal/store"

	"github.com/gin-gonic/gin"
)

// errorDetail maps an error to its HTTP status and wire shape.
func errorDetail(err error) (int, models.ErrorDetail) {
	var cfgErr *model.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		return http.StatusBadRequest, models.ErrorDetail{
			Code:    "INVALID_CONFIG",
			Message: err.Error(),
			Details: map[string]interface{}{"field": cfgErr.Field},
		}
	case model.IsConfigError(err):
		return http.StatusBadRequest, models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()}
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, models.ErrorDetail{Code: "NOT_FOUND", Message: err.Error()}
	default:
		return http.StatusInternalServerError, models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()}
	}
}

func writeError(c *gin.Context, handler string, err error) {
	status, detail := errorDetail(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s: %s %s failed: %v", handler, c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, models.ErrorResponse{Error: detail})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}
