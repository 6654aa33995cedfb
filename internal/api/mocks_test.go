package api_test

import (
	"context"

	"github.com/bookingmx/bookingmx/internal/cities"
	"github.com/bookingmx/bookingmx/internal/models"
)

// mockReservationService implements api.ReservationService for testing.
type mockReservationService struct {
	listFn   func(ctx context.Context) ([]models.Reservation, error)
	getFn    func(ctx context.Context, id int64) (*models.Reservation, error)
	createFn func(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error)
	updateFn func(ctx context.Context, id int64, req models.ReservationRequest) (*models.Reservation, error)
	cancelFn func(ctx context.Context, id int64) (*models.Reservation, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	return m.listFn(ctx)
}

func (m *mockReservationService) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	return m.getFn(ctx, id)
}

func (m *mockReservationService) Create(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error) {
	return m.createFn(ctx, req)
}

func (m *mockReservationService) Update(ctx context.Context, id int64, req models.ReservationRequest) (*models.Reservation, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockReservationService) Cancel(ctx context.Context, id int64) (*models.Reservation, error) {
	return m.cancelFn(ctx, id)
}

func (m *mockReservationService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// mockCityService implements api.CityService for testing.
type mockCityService struct {
	listFn      func(ctx context.Context) (cities.Catalog, error)
	neighborsFn func(ctx context.Context, name string) ([]cities.Neighbor, error)
	nearbyFn    func(ctx context.Context, destination any, maxKm *float64) ([]cities.NearbyCity, error)
	validateFn  func(ctx context.Context, data cities.RawDataset) cities.Validation
}

func (m *mockCityService) ListCities(ctx context.Context) (cities.Catalog, error) {
	return m.listFn(ctx)
}

func (m *mockCityService) Neighbors(ctx context.Context, name string) ([]cities.Neighbor, error) {
	return m.neighborsFn(ctx, name)
}

func (m *mockCityService) Nearby(ctx context.Context, destination any, maxKm *float64) ([]cities.NearbyCity, error) {
	return m.nearbyFn(ctx, destination, maxKm)
}

func (m *mockCityService) Validate(ctx context.Context, data cities.RawDataset) cities.Validation {
	return m.validateFn(ctx, data)
}
