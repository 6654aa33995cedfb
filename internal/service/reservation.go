// Package service provides business logic between API handlers and data stores.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bookingmx/bookingmx/internal/domain"
	"github.com/bookingmx/bookingmx/internal/metrics"
	"github.com/bookingmx/bookingmx/internal/models"
)

// ReservationStore is the data-access interface ReservationService depends on.
type ReservationStore interface {
	FindAll(ctx context.Context) ([]models.Reservation, error)
	FindByID(ctx context.Context, id int64) (*models.Reservation, error)
	Save(ctx context.Context, r *models.Reservation) (*models.Reservation, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (map[models.ReservationStatus]int, error)
}

// Clock returns the current time.
type Clock func() time.Time

// EventEnqueuer accepts reservation events for asynchronous delivery.
type EventEnqueuer interface {
	Enqueue(job *EventJob)
}

// Compile-time check: *ReservationService must satisfy domain.ReservationService.
var _ domain.ReservationService = (*ReservationService)(nil)

// ReservationService enforces the reservation lifecycle and date rules on top
// of a ReservationStore.
type ReservationService struct {
	store  ReservationStore
	events EventEnqueuer
	loc    *time.Location
	now    Clock
	log    *logrus.Logger
}

// NewReservationService creates a ReservationService. "Today" is evaluated in
// loc; a nil loc means UTC. events may be nil.
func NewReservationService(store ReservationStore, events EventEnqueuer, loc *time.Location, log *logrus.Logger) *ReservationService {
	if loc == nil {
		loc = time.UTC
	}

	return &ReservationService{store: store, events: events, loc: loc, now: time.Now, log: log}
}

// WithClock replaces the clock used to determine today's date.
func (s *ReservationService) WithClock(now Clock) *ReservationService {
	s.now = now
	return s
}

// today is the current calendar date in the configured location.
func (s *ReservationService) today() models.Date {
	return models.DateOf(s.now().In(s.loc))
}

// validateDates applies the date rules in order; the first failure wins.
func (s *ReservationService) validateDates(in, out models.Date) error {
	if in.IsZero() || out.IsZero() {
		return models.NewValidationError(models.ErrMissingDates)
	}

	if !out.After(in) {
		return models.NewValidationError(models.ErrCheckOutNotAfterCheckIn)
	}

	today := s.today()

	if !in.After(today) {
		return models.NewValidationError(models.ErrCheckInNotFuture)
	}

	if !out.After(today) {
		return models.NewValidationError(models.ErrCheckOutNotFuture)
	}

	return nil
}

// validateRequest checks the request shape and then the date rules.
func (s *ReservationService) validateRequest(req *models.ReservationRequest) error {
	if err := req.Validate(); err != nil {
		return models.NewValidationError(err)
	}

	return s.validateDates(req.CheckIn, req.CheckOut)
}

// List returns all reservations.
func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	return s.store.FindAll(ctx)
}

// Get returns a single reservation.
func (s *ReservationService) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	return s.store.FindByID(ctx, id)
}

// Create validates req and stores a new ACTIVE reservation.
func (s *ReservationService) Create(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error) {
	if err := s.validateRequest(&req); err != nil {
		s.observe("create", err)
		return nil, err
	}

	saved, err := s.store.Save(ctx, &models.Reservation{
		GuestName: req.GuestName,
		HotelName: req.HotelName,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Status:    models.StatusActive,
	})
	s.observe("create", err)

	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"reservation_id": saved.ID,
		"hotel":          saved.HotelName,
	}).Debug("reservation created")

	s.publish(ctx, "reservation.created", saved)

	return saved, nil
}

// Update overwrites the guest, hotel and dates of an ACTIVE reservation.
// A CANCELED reservation is rejected without being touched.
func (s *ReservationService) Update(ctx context.Context, id int64, req models.ReservationRequest) (*models.Reservation, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		s.observe("update", err)
		return nil, err
	}

	if !existing.IsActive() {
		err := models.NewValidationError(models.ErrReservationCanceled)
		s.observe("update", err)

		return nil, err
	}

	if err := s.validateRequest(&req); err != nil {
		s.observe("update", err)
		return nil, err
	}

	existing.GuestName = req.GuestName
	existing.HotelName = req.HotelName
	existing.CheckIn = req.CheckIn
	existing.CheckOut = req.CheckOut

	saved, err := s.store.Save(ctx, existing)
	s.observe("update", err)

	if err != nil {
		return nil, err
	}

	s.log.WithField("reservation_id", saved.ID).Debug("reservation updated")

	s.publish(ctx, "reservation.updated", saved)

	return saved, nil
}

// Cancel marks a reservation CANCELED. Canceling twice re-saves the same status.
func (s *ReservationService) Cancel(ctx context.Context, id int64) (*models.Reservation, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		s.observe("cancel", err)
		return nil, err
	}

	existing.Status = models.StatusCanceled

	saved, err := s.store.Save(ctx, existing)
	s.observe("cancel", err)

	if err != nil {
		return nil, err
	}

	s.log.WithField("reservation_id", saved.ID).Debug("reservation canceled")

	s.publish(ctx, "reservation.canceled", saved)

	return saved, nil
}

// Delete removes a reservation permanently.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	s.observe("delete", err)

	if err != nil {
		return err
	}

	s.log.WithField("reservation_id", id).Debug("reservation deleted")

	s.publish(ctx, "reservation.deleted", &models.Reservation{ID: id})

	return nil
}

// Counts returns reservation totals per status.
func (s *ReservationService) Counts(ctx context.Context) (map[models.ReservationStatus]int, error) {
	return s.store.Count(ctx)
}

// observe records the outcome of a mutation.
func (s *ReservationService) observe(op string, err error) {
	outcome := "ok"

	switch {
	case err == nil:
	case errors.Is(err, models.ErrReservationNotFound):
		outcome = "not_found"
	case models.IsValidation(err):
		outcome = "invalid"
	default:
		outcome = "error"
	}

	metrics.ReservationOps.WithLabelValues(op, outcome).Inc()
}

// publish enqueues an event and refreshes the per-status gauge.
func (s *ReservationService) publish(ctx context.Context, eventType string, r *models.Reservation) {
	if counts, err := s.store.Count(ctx); err == nil {
		for status, n := range counts {
			metrics.ReservationsByStatus.WithLabelValues(string(status)).Set(float64(n))
		}
	} else {
		s.log.WithError(err).Warn("counting reservations failed")
	}

	if s.events == nil {
		return
	}

	s.events.Enqueue(&EventJob{Type: eventType, Reservation: *r})
}
