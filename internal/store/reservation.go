package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bookingmx/bookingmx/internal/models"
)

const reservationColumns = `id, guest_name, hotel_name, check_in, check_out, status, created_at, updated_at`

// ReservationStore persists reservations in PostgreSQL. IDs come from a
// BIGSERIAL sequence, which never hands out the same value twice.
type ReservationStore struct {
	Base
}

// NewReservationStore creates a new ReservationStore.
func NewReservationStore(base Base) *ReservationStore {
	return &ReservationStore{Base: base}
}

// scanReservation scans a row using reservationColumns order.
func scanReservation(scan func(dest ...any) error) (*models.Reservation, error) {
	var r models.Reservation

	var status string

	if err := scan(&r.ID, &r.GuestName, &r.HotelName, &r.CheckIn, &r.CheckOut, &status, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}

	r.Status = models.ReservationStatus(status)

	return &r, nil
}

// FindAll returns all reservations ordered by ID.
func (s *ReservationStore) FindAll(ctx context.Context) ([]models.Reservation, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying reservations: %w", err)
	}
	defer rows.Close()

	result := make([]models.Reservation, 0)

	for rows.Next() {
		r, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning reservation row: %w", err)
		}

		result = append(result, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reservation rows: %w", err)
	}

	return result, nil
}

// FindByID returns one reservation.
func (s *ReservationStore) FindByID(ctx context.Context, id int64) (*models.Reservation, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.Pool.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)

	r, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrReservationNotFound
		}

		return nil, fmt.Errorf("getting reservation: %w", err)
	}

	return r, nil
}

// Save inserts r when r.ID is 0 and updates it otherwise.
func (s *ReservationStore) Save(ctx context.Context, r *models.Reservation) (*models.Reservation, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var row pgx.Row

	if r.ID == 0 {
		row = s.Pool.QueryRow(ctx,
			`INSERT INTO reservations (guest_name, hotel_name, check_in, check_out, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+reservationColumns,
			r.GuestName, r.HotelName, r.CheckIn, r.CheckOut, string(r.Status))
	} else {
		row = s.Pool.QueryRow(ctx,
			`UPDATE reservations
			SET guest_name = $1, hotel_name = $2, check_in = $3, check_out = $4, status = $5, updated_at = NOW()
			WHERE id = $6
			RETURNING `+reservationColumns,
			r.GuestName, r.HotelName, r.CheckIn, r.CheckOut, string(r.Status), r.ID)
	}

	saved, err := scanReservation(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrReservationNotFound
		}

		return nil, fmt.Errorf("saving reservation: %w", err)
	}

	op := "update"
	if r.ID == 0 {
		op = "insert"
	}

	s.Log.WithField("reservation_id", saved.ID).Debug("reservation " + op)

	return saved, nil
}

// Delete removes a reservation permanently.
func (s *ReservationStore) Delete(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting reservation: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrReservationNotFound
	}

	return nil
}

// Count returns the number of reservations per status.
func (s *ReservationStore) Count(ctx context.Context) (map[models.ReservationStatus]int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, `SELECT status, COUNT(*) FROM reservations GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting reservations: %w", err)
	}
	defer rows.Close()

	counts := map[models.ReservationStatus]int{
		models.StatusActive:   0,
		models.StatusCanceled: 0,
	}

	for rows.Next() {
		var (
			status string
			n      int
		)

		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning reservation count: %w", err)
		}

		counts[models.ReservationStatus(status)] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reservation counts: %w", err)
	}

	return counts, nil
}

// Backend names the storage backend for health reporting.
func (s *ReservationStore) Backend() string { return "postgres" }
