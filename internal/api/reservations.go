package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bookingmx/bookingmx/internal/models"
)

// ReservationHandler serves reservation CRUD endpoints.
type ReservationHandler struct {
	svc ReservationService
	log *logrus.Logger
}

// NewReservationHandler creates a ReservationHandler with the given service and logger.
func NewReservationHandler(svc ReservationService, log *logrus.Logger) *ReservationHandler {
	return &ReservationHandler{svc: svc, log: log}
}

// List handles GET /api/v1/reservations.
func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err, "listing reservations")

		return
	}

	c.JSON(http.StatusOK, reservations)
}

// Get handles GET /api/v1/reservations/:id.
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	r, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, "getting reservation")

		return
	}

	c.JSON(http.StatusOK, r)
}

// Create handles POST /api/v1/reservations.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	r, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, err, "creating reservation")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "reservation.create", "reservation_id": r.ID}).Info("audit")

	c.JSON(http.StatusCreated, r)
}

// Update handles PUT /api/v1/reservations/:id.
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	r, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, h.log, err, "updating reservation")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "reservation.update", "reservation_id": id}).Info("audit")

	c.JSON(http.StatusOK, r)
}

// Cancel handles DELETE /api/v1/reservations/:id and POST /api/v1/reservations/:id/cancel.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	r, err := h.svc.Cancel(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err, "canceling reservation")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "reservation.cancel", "reservation_id": id}).Info("audit")

	c.JSON(http.StatusOK, r)
}

// Purge handles DELETE /api/v1/reservations/:id/purge.
func (h *ReservationHandler) Purge(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.log, err, "deleting reservation")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "reservation.delete", "reservation_id": id}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
