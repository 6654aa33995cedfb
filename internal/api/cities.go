package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/bookingmx/bookingmx/internal/cities"
)

// CityHandler serves city graph endpoints.
type CityHandler struct {
	svc CityService
	log *logrus.Logger
}

// NewCityHandler creates a CityHandler with the given service and logger.
func NewCityHandler(svc CityService, log *logrus.Logger) *CityHandler {
	return &CityHandler{svc: svc, log: log}
}

// nearbyRequest is the body of POST /cities/nearby. Destination is left
// untyped: anything but a string yields an empty result rather than an error.
type nearbyRequest struct {
	Destination   any      `json:"destination"`
	MaxDistanceKm *float64 `json:"maxDistanceKm"`
}

// List handles GET /api/v1/cities.
func (h *CityHandler) List(c *gin.Context) {
	catalog, err := h.svc.ListCities(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing cities")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, catalog)
}

// Neighbors handles GET /api/v1/cities/:name/neighbors.
func (h *CityHandler) Neighbors(c *gin.Context) {
	neighbors, err := h.svc.Neighbors(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, cities.ErrUnknownCity) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "city not found")

			return
		}

		h.log.WithError(err).Error("listing neighbors")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, neighbors)
}

// NearbyByName handles GET /api/v1/cities/:name/nearby?max_km=.
func (h *CityHandler) NearbyByName(c *gin.Context) {
	maxKm, err := parseMaxKm(c.Query("max_km"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	h.nearby(c, c.Param("name"), maxKm)
}

// Nearby handles POST /api/v1/cities/nearby.
func (h *CityHandler) Nearby(c *gin.Context) {
	var req nearbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	h.nearby(c, req.Destination, req.MaxDistanceKm)
}

func (h *CityHandler) nearby(c *gin.Context, destination any, maxKm *float64) {
	result, err := h.svc.Nearby(c.Request.Context(), destination, maxKm)
	if err != nil {
		h.log.WithError(err).Error("nearby cities")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}

// Validate handles POST /api/v1/cities/validate.
func (h *CityHandler) Validate(c *gin.Context) {
	var raw cities.RawDataset

	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()

	if err := dec.Decode(&raw); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	c.JSON(http.StatusOK, h.svc.Validate(c.Request.Context(), raw))
}
