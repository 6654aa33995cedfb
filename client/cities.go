package client

import (
	"context"
	"net/url"
	"strconv"
)

// CityService handles city graph queries.
type CityService struct {
	c *Client
}

// List returns the city catalog.
func (s *CityService) List(ctx context.Context) (*CityCatalog, error) {
	var out CityCatalog
	if err := s.c.get(ctx, "/api/v1/cities", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Neighbors returns the cities one road away from name.
func (s *CityService) Neighbors(ctx context.Context, name string) ([]Neighbor, error) {
	var out []Neighbor
	if err := s.c.get(ctx, "/api/v1/cities/"+url.PathEscape(name)+"/neighbors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Nearby returns cities within maxKm of destination, closest first. A
// maxKm of zero or less uses the server default.
func (s *CityService) Nearby(ctx context.Context, destination string, maxKm float64) ([]NearbyCity, error) {
	params := url.Values{}
	if maxKm > 0 {
		params.Set("max_km", strconv.FormatFloat(maxKm, 'f', -1, 64))
	}
	var out []NearbyCity
	if err := s.c.get(ctx, "/api/v1/cities/"+url.PathEscape(destination)+"/nearby", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate asks the server to check a dataset. dataset is sent as-is, so
// malformed shapes reach the validator unchanged.
func (s *CityService) Validate(ctx context.Context, dataset any) (*Validation, error) {
	var out Validation
	if err := s.c.post(ctx, "/api/v1/cities/validate", dataset, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
