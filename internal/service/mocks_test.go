package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/bookingmx/bookingmx/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	return log
}

// mockReservationStore records calls and returns configured responses.
// Unset funcs fall back to an in-memory map so tests only stub what they need.
type mockReservationStore struct {
	mu    sync.Mutex
	calls []string
	items map[int64]models.Reservation
	seq   int64

	findByID func(ctx context.Context, id int64) (*models.Reservation, error)
	save     func(ctx context.Context, r *models.Reservation) (*models.Reservation, error)
	del      func(ctx context.Context, id int64) error
}

func newMockReservationStore() *mockReservationStore {
	return &mockReservationStore{items: make(map[int64]models.Reservation)}
}

func (m *mockReservationStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockReservationStore) getCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]string, len(m.calls))
	copy(cp, m.calls)
	return cp
}

func (m *mockReservationStore) put(r models.Reservation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[r.ID] = r
	if r.ID > m.seq {
		m.seq = r.ID
	}
}

func (m *mockReservationStore) FindAll(_ context.Context) ([]models.Reservation, error) {
	m.record("FindAll")
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]models.Reservation, 0, len(m.items))
	for id := int64(1); id <= m.seq; id++ {
		if r, ok := m.items[id]; ok {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockReservationStore) FindByID(ctx context.Context, id int64) (*models.Reservation, error) {
	m.record("FindByID")
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.items[id]
	if !ok {
		return nil, models.ErrReservationNotFound
	}
	return &r, nil
}

func (m *mockReservationStore) Save(ctx context.Context, r *models.Reservation) (*models.Reservation, error) {
	m.record("Save")
	if m.save != nil {
		return m.save(ctx, r)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *r
	if cp.ID == 0 {
		m.seq++
		cp.ID = m.seq
	} else if _, ok := m.items[cp.ID]; !ok {
		return nil, models.ErrReservationNotFound
	}
	m.items[cp.ID] = cp
	return &cp, nil
}

func (m *mockReservationStore) Delete(ctx context.Context, id int64) error {
	m.record("Delete")
	if m.del != nil {
		return m.del(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return models.ErrReservationNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockReservationStore) Count(_ context.Context) (map[models.ReservationStatus]int, error) {
	m.record("Count")
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := map[models.ReservationStatus]int{}
	for _, r := range m.items {
		counts[r.Status]++
	}
	return counts, nil
}

// mockEventEnqueuer records enqueued events.
type mockEventEnqueuer struct {
	mu   sync.Mutex
	jobs []EventJob
}

func (m *mockEventEnqueuer) Enqueue(job *EventJob) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append(m.jobs, *job)
}

func (m *mockEventEnqueuer) getJobs() []EventJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]EventJob, len(m.jobs))
	copy(cp, m.jobs)
	return cp
}

// broadcastCall is one BroadcastEvent invocation.
type broadcastCall struct {
	Type string
	Data json.RawMessage
}

// mockBroadcaster records broadcast events.
type mockBroadcaster struct {
	mu    sync.Mutex
	calls []broadcastCall
}

func (m *mockBroadcaster) BroadcastEvent(eventType string, data json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, broadcastCall{Type: eventType, Data: data})
}

func (m *mockBroadcaster) getCalls() []broadcastCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]broadcastCall, len(m.calls))
	copy(cp, m.calls)
	return cp
}
