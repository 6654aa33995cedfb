// Package store provides reservation persistence.
//
// Two backends satisfy the same method set: MemoryReservationStore keeps
// everything in process memory, ReservationStore persists to PostgreSQL.
// The server picks one at startup from STORE_BACKEND.
package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bookingmx/bookingmx/internal/dbpool"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for database-backed stores.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}
