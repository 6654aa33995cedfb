package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bookingmx/bookingmx/internal/httputil"
	"github.com/bookingmx/bookingmx/internal/metrics"
	"github.com/bookingmx/bookingmx/internal/models"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest  = "invalid_request"
	ErrCodeNotFound        = "not_found"
	ErrCodeInternalError   = "internal_error"
	ErrCodeRateLimited     = "rate_limited"
	ErrCodeValidationError = "validation_error"
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// respondServiceError maps a reservation service error to a response.
// Unclassified errors are logged and reported without detail.
func respondServiceError(c *gin.Context, log *logrus.Logger, err error, op string) {
	switch {
	case errors.Is(err, models.ErrReservationNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "reservation not found")
	case models.IsValidation(err):
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())
	default:
		log.WithError(err).Error(op)
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
