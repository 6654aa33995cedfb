package db

import (
	"path"

	"github.com/bookingmx/bookingmx/internal/db/migrations"
)

// SchemaVersion returns the number of embedded SQL migration files, which
// equals the schema version a fully migrated database is at.
func SchemaVersion() int {
	entries, err := migrations.FS.ReadDir(".")
	if err != nil {
		return 0
	}

	count := 0
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".sql" {
			count++
		}
	}

	return count
}
