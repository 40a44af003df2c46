package sessionstore

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

// StubMigrations replaces the goose runner until the returned func is called.
func StubMigrations(fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) func() {
	orig := gooseUpContext
	gooseUpContext = fn
	return func() { gooseUpContext = orig }
}
