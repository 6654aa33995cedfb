package client

import (
	"context"
	"strconv"
)

// ReservationService handles reservation operations.
type ReservationService struct {
	c *Client
}

func reservationPath(id int64) string {
	return "/api/v1/reservations/" + strconv.FormatInt(id, 10)
}

// List returns all reservations.
func (s *ReservationService) List(ctx context.Context) ([]Reservation, error) {
	var out []Reservation
	if err := s.c.get(ctx, "/api/v1/reservations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a single reservation by ID.
func (s *ReservationService) Get(ctx context.Context, id int64) (*Reservation, error) {
	var r Reservation
	if err := s.c.get(ctx, reservationPath(id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Create books a new reservation.
func (s *ReservationService) Create(ctx context.Context, req *ReservationRequest) (*Reservation, error) {
	var r Reservation
	if err := s.c.post(ctx, "/api/v1/reservations", req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Update replaces the guest, hotel and dates of an active reservation.
func (s *ReservationService) Update(ctx context.Context, id int64, req *ReservationRequest) (*Reservation, error) {
	var r Reservation
	if err := s.c.put(ctx, reservationPath(id), req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Cancel marks a reservation CANCELED. Canceling twice is not an error.
func (s *ReservationService) Cancel(ctx context.Context, id int64) (*Reservation, error) {
	var r Reservation
	if err := s.c.post(ctx, reservationPath(id)+"/cancel", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Delete removes a reservation permanently.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	return s.c.del(ctx, reservationPath(id)+"/purge", nil)
}
