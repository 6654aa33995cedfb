package store

import (
	"context"
	"sync"
	"time"

	"github.com/bookingmx/bookingmx/internal/models"
)

// MemoryReservationStore keeps reservations in process memory. The ID
// sequence belongs to the instance and only advances under mu, so IDs are
// unique and never reused, including after Delete.
type MemoryReservationStore struct {
	mu    sync.RWMutex
	items map[int64]*models.Reservation
	order []int64
	seq   int64
	now   func() time.Time
}

// NewMemoryReservationStore creates an empty store whose first ID is 1.
func NewMemoryReservationStore() *MemoryReservationStore {
	return &MemoryReservationStore{
		items: make(map[int64]*models.Reservation),
		now:   time.Now,
	}
}

// FindAll returns copies of all reservations in insertion order.
func (s *MemoryReservationStore) FindAll(_ context.Context) ([]models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Reservation, 0, len(s.items))
	for _, id := range s.order {
		if r, ok := s.items[id]; ok {
			result = append(result, *r)
		}
	}

	return result, nil
}

// FindByID returns a copy of the reservation with the given ID.
func (s *MemoryReservationStore) FindByID(_ context.Context, id int64) (*models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.items[id]
	if !ok {
		return nil, models.ErrReservationNotFound
	}

	cp := *r

	return &cp, nil
}

// Save inserts r when r.ID is 0, assigning the next ID, and otherwise
// overwrites the stored record. Saving an unknown or deleted ID returns
// models.ErrReservationNotFound. Concurrent saves of one ID are last-write-wins.
func (s *MemoryReservationStore) Save(_ context.Context, r *models.Reservation) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *r
	now := s.now().UTC()

	if cp.ID == 0 {
		s.seq++
		cp.ID = s.seq
		cp.CreatedAt = now
		s.order = append(s.order, cp.ID)
	} else {
		existing, ok := s.items[cp.ID]
		if !ok {
			return nil, models.ErrReservationNotFound
		}

		cp.CreatedAt = existing.CreatedAt
	}

	cp.UpdatedAt = now
	s.items[cp.ID] = &cp
	out := cp

	return &out, nil
}

// Delete removes a reservation permanently.
func (s *MemoryReservationStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return models.ErrReservationNotFound
	}

	delete(s.items, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// Count returns the number of reservations per status.
func (s *MemoryReservationStore) Count(_ context.Context) (map[models.ReservationStatus]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[models.ReservationStatus]int{
		models.StatusActive:   0,
		models.StatusCanceled: 0,
	}
	for _, r := range s.items {
		counts[r.Status]++
	}

	return counts, nil
}

// Backend names the storage backend for health reporting.
func (s *MemoryReservationStore) Backend() string { return "memory" }
