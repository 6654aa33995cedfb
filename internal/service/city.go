package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/bookingmx/bookingmx/internal/cities"
	"github.com/bookingmx/bookingmx/internal/domain"
	"github.com/bookingmx/bookingmx/internal/metrics"
)

// Compile-time check: *CityService must satisfy domain.CityService.
var _ domain.CityService = (*CityService)(nil)

// CityService answers nearby-destination queries over a read-only city graph.
type CityService struct {
	graph        *cities.Graph
	defaultMaxKm float64
	log          *logrus.Logger
}

// NewCityService creates a CityService. A non-positive defaultMaxKm falls
// back to cities.DefaultMaxDistanceKm.
func NewCityService(graph *cities.Graph, defaultMaxKm float64, log *logrus.Logger) *CityService {
	if defaultMaxKm <= 0 {
		defaultMaxKm = cities.DefaultMaxDistanceKm
	}

	if graph != nil {
		metrics.CityCount.Set(float64(len(graph.Cities())))
		metrics.RoadCount.Set(float64(graph.EdgeCount()))
	}

	return &CityService{graph: graph, defaultMaxKm: defaultMaxKm, log: log}
}

// ListCities returns every city and the number of roads between them.
func (s *CityService) ListCities(_ context.Context) (cities.Catalog, error) {
	if s.graph == nil {
		return cities.Catalog{}, cities.ErrNotAGraph
	}

	return s.graph.Catalog(), nil
}

// Neighbors returns the direct neighbors of a city. Unknown cities yield cities.ErrUnknownCity.
func (s *CityService) Neighbors(_ context.Context, name string) ([]cities.Neighbor, error) {
	if s.graph == nil {
		return nil, cities.ErrNotAGraph
	}

	return s.graph.Neighbors(name)
}

// Nearby suggests cities within maxKm of destination. A nil maxKm uses the
// configured default; a non-string destination yields an empty result.
func (s *CityService) Nearby(_ context.Context, destination any, maxKm *float64) ([]cities.NearbyCity, error) {
	limit := s.defaultMaxKm
	if maxKm != nil {
		limit = *maxKm
	}

	metrics.NearbyQueries.Inc()

	result, err := cities.NearbyCitiesFor(s.graph, destination, limit)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"destination": destination,
		"max_km":      limit,
		"results":     len(result),
	}).Debug("nearby query")

	return result, nil
}

// Validate checks a raw dataset without building it.
func (s *CityService) Validate(_ context.Context, data cities.RawDataset) cities.Validation {
	return cities.ValidateGraphData(data)
}

// DefaultMaxKm returns the radius used when a query gives none.
func (s *CityService) DefaultMaxKm() float64 {
	return s.defaultMaxKm
}
