package api

import "github.com/bookingmx/bookingmx/internal/domain"

// ReservationService defines reservation operations used by ReservationHandler.
type ReservationService = domain.ReservationService

// CityService defines city graph queries used by CityHandler.
type CityService = domain.CityService
