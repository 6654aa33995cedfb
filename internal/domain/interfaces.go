// Package domain defines the canonical service interfaces shared by the API
// layer and the services that implement them.
package domain

import (
	"context"

	"github.com/bookingmx/bookingmx/internal/cities"
	"github.com/bookingmx/bookingmx/internal/models"
)

// ReservationService defines all reservation operations.
type ReservationService interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Get(ctx context.Context, id int64) (*models.Reservation, error)
	Create(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error)
	Update(ctx context.Context, id int64, req models.ReservationRequest) (*models.Reservation, error)
	Cancel(ctx context.Context, id int64) (*models.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// CityService defines city graph queries.
type CityService interface {
	ListCities(ctx context.Context) (cities.Catalog, error)
	Neighbors(ctx context.Context, name string) ([]cities.Neighbor, error)
	Nearby(ctx context.Context, destination any, maxKm *float64) ([]cities.NearbyCity, error)
	Validate(ctx context.Context, data cities.RawDataset) cities.Validation
}
