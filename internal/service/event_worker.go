package service

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/bookingmx/bookingmx/internal/metrics"
	"github.com/bookingmx/bookingmx/internal/models"
)

// EventJob is a reservation change to be delivered to live subscribers.
type EventJob struct {
	Type        string
	Reservation models.Reservation
}

// EventBroadcaster delivers a typed event to subscribers.
type EventBroadcaster interface {
	BroadcastEvent(eventType string, data json.RawMessage)
}

// EventWorker buffers reservation events and hands them to the broadcaster
// from a single goroutine, so request handlers never block on slow consumers.
type EventWorker struct {
	broadcaster EventBroadcaster
	log         *logrus.Logger
	jobs        chan *EventJob
}

// NewEventWorker creates an EventWorker with the given queue capacity.
func NewEventWorker(broadcaster EventBroadcaster, log *logrus.Logger, queueSize int) *EventWorker {
	if queueSize <= 0 {
		queueSize = 1000
	}
	return &EventWorker{
		broadcaster: broadcaster,
		log:         log,
		jobs:        make(chan *EventJob, queueSize),
	}
}

// Enqueue adds an event. Non-blocking; drops the event if the queue is full.
func (w *EventWorker) Enqueue(job *EventJob) {
	select {
	case w.jobs <- job:
		metrics.EventQueueDepth.Set(float64(len(w.jobs)))
	default:
		w.log.WithFields(logrus.Fields{
			"type":           job.Type,
			"reservation_id": job.Reservation.ID,
		}).Warn("event queue full, dropping event")
	}
}

// Run delivers events until the context is cancelled, then drains remaining events.
func (w *EventWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case job := <-w.jobs:
			w.process(job)
		}
	}
}

func (w *EventWorker) drain() {
	for {
		select {
		case job := <-w.jobs:
			w.process(job)
		default:
			return
		}
	}
}

func (w *EventWorker) process(job *EventJob) {
	metrics.EventQueueDepth.Set(float64(len(w.jobs)))

	data, err := json.Marshal(job.Reservation)
	if err != nil {
		w.log.WithError(err).WithField("type", job.Type).Warn("encoding event failed")
		return
	}

	w.broadcaster.BroadcastEvent(job.Type, data)
}
