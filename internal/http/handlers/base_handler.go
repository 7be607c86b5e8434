// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roadfit/internal/modules/inventory"
	"roadfit/internal/modules/recommend"
	"roadfit/internal/modules/route"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeRecommendError maps module errors onto HTTP statuses. Anything
// unrecognized stays a 500 without leaking detail.
func writeRecommendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, route.ErrMalformedTracePoint),
		errors.Is(err, recommend.ErrNoTrace):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, inventory.ErrBookingNotFound),
		errors.Is(err, inventory.ErrNoVehicles):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, inventory.ErrUpstream):
		writeError(c, http.StatusBadGateway, inventory.ErrUpstream.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
