package store_test

import (
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/bookingmx/bookingmx/internal/db"
	"github.com/bookingmx/bookingmx/internal/dbpool"
	"github.com/bookingmx/bookingmx/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL, 4)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	if err := db.Migrate(ctx, pool, log); err != nil {
		t.Fatalf("migrating test DB: %v", err)
	}

	sharedEnv = &testEnv{
		pool: pool,
		log:  log,
	}

	return sharedEnv
}

// setupTestStore returns a PostgreSQL store over an emptied reservations table.
func setupTestStore(t *testing.T) *store.ReservationStore {
	t.Helper()

	env := getTestEnv(t)

	if _, err := env.pool.Exec(context.Background(), "DELETE FROM reservations"); err != nil {
		t.Fatalf("cleaning reservations: %v", err)
	}

	t.Cleanup(func() {
		_, _ = env.pool.Exec(context.Background(), "DELETE FROM reservations")
	})

	return store.NewReservationStore(store.Base{Pool: env.pool, Log: env.log})
}
