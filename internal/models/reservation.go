// Package models defines data types for hotel reservations.
package models

import (
	"strings"
	"time"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

// Reservation statuses. CANCELED is terminal.
const (
	StatusActive   ReservationStatus = "ACTIVE"
	StatusCanceled ReservationStatus = "CANCELED"
)

// Reservation is a booking of a hotel stay for one guest.
type Reservation struct {
	ID        int64             `json:"id"`
	GuestName string            `json:"guestName"`
	HotelName string            `json:"hotelName"`
	CheckIn   Date              `json:"checkIn"`
	CheckOut  Date              `json:"checkOut"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// IsActive reports whether the reservation can still be modified.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// ReservationRequest is the payload for creating or updating a reservation.
type ReservationRequest struct {
	GuestName string `json:"guestName"`
	HotelName string `json:"hotelName"`
	CheckIn   Date   `json:"checkIn"`
	CheckOut  Date   `json:"checkOut"`
}

// Field length limits.
const (
	maxGuestNameLen = 200
	maxHotelNameLen = 200
)

// Validate checks required fields and trims surrounding whitespace from names.
// Date ordering and future-ness are business rules enforced by the service.
func (r *ReservationRequest) Validate() error {
	r.GuestName = strings.TrimSpace(r.GuestName)
	r.HotelName = strings.TrimSpace(r.HotelName)

	if r.GuestName == "" {
		return ErrMissingGuestName
	}

	if len(r.GuestName) > maxGuestNameLen {
		return ErrFieldTooLong("guestName", maxGuestNameLen)
	}

	if r.HotelName == "" {
		return ErrMissingHotelName
	}

	if len(r.HotelName) > maxHotelNameLen {
		return ErrFieldTooLong("hotelName", maxHotelNameLen)
	}

	if r.CheckIn.IsZero() || r.CheckOut.IsZero() {
		return ErrMissingDates
	}

	return nil
}
