package client

import "time"

// Reservation statuses.
const (
	StatusActive   = "ACTIVE"
	StatusCanceled = "CANCELED"
)

// Reservation is a hotel booking. Dates are calendar dates in "YYYY-MM-DD" form.
type Reservation struct {
	ID        int64     `json:"id"`
	GuestName string    `json:"guestName"`
	HotelName string    `json:"hotelName"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationRequest is the payload for creating or updating a reservation.
type ReservationRequest struct {
	GuestName string `json:"guestName"`
	HotelName string `json:"hotelName"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
}

// CityCatalog lists the cities known to the server.
type CityCatalog struct {
	Cities []string `json:"cities"`
	Roads  int      `json:"roads"`
}

// Neighbor is a city one road away.
type Neighbor struct {
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// NearbyCity is a nearby-destination suggestion.
type NearbyCity struct {
	City     string  `json:"city"`
	Distance float64 `json:"distance"`
}

// Validation is the outcome of a dataset validation.
type Validation struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Store         string  `json:"store"`
	Database      string  `json:"database"`
	Cities        int     `json:"cities"`
	LiveClients   int     `json:"live_clients"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadyResponse is returned by the readiness endpoint.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
