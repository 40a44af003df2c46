package sessionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexedwards/scs/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/sessionstore/migrations"
)

const cleanupInterval = 5 * time.Minute

// PostgresStore is an scs.Store keeping browser sessions in a postgres table.
type PostgresStore struct {
	db          *sql.DB
	stopCleanup chan struct{}
}

var (
	_ scs.Store    = (*PostgresStore)(nil)
	_ scs.CtxStore = (*PostgresStore)(nil)
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error { //nolint:gochecknoglobals // test seam
	return goose.UpContext(ctx, db, dir, opts...)
}

// OpenPostgres connects with the pgx driver and brings the sessions table up to date.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	if err = RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// RunMigrations applies the embedded migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to select migration dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to migrate sessions table: %w", err)
	}
	return nil
}

// NewPostgresStore creates a store over db. A positive interval starts a
// background sweep of expired rows, stopped by StopCleanup.
func NewPostgresStore(db *sql.DB, interval time.Duration) *PostgresStore {
	store := &PostgresStore{db: db}
	if interval > 0 {
		store.stopCleanup = make(chan struct{})
		go store.startCleanup(interval, store.stopCleanup)
	}
	return store
}

func (it *PostgresStore) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	var data []byte
	row := it.db.QueryRowContext(ctx,
		"SELECT data FROM sessions WHERE token = $1 AND current_timestamp < expiry", token)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to find session: %w", err)
	}
	return data, true, nil
}

func (it *PostgresStore) CommitCtx(ctx context.Context, token string, b []byte, expiry time.Time) error {
	_, err := it.db.ExecContext(ctx,
		`INSERT INTO sessions (token, data, expiry) VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET data = EXCLUDED.data, expiry = EXCLUDED.expiry`,
		token, b, expiry.UTC())
	if err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

func (it *PostgresStore) DeleteCtx(ctx context.Context, token string) error {
	if _, err := it.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = $1", token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (it *PostgresStore) Find(token string) ([]byte, bool, error) {
	return it.FindCtx(context.Background(), token)
}

func (it *PostgresStore) Commit(token string, b []byte, expiry time.Time) error {
	return it.CommitCtx(context.Background(), token, b, expiry)
}

func (it *PostgresStore) Delete(token string) error {
	return it.DeleteCtx(context.Background(), token)
}

// DeleteExpired removes every expired session.
func (it *PostgresStore) DeleteExpired(ctx context.Context) error {
	if _, err := it.db.ExecContext(ctx, "DELETE FROM sessions WHERE expiry < current_timestamp"); err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}

// StopCleanup terminates the background sweep. It is a no-op without one.
func (it *PostgresStore) StopCleanup() {
	if it.stopCleanup != nil {
		close(it.stopCleanup)
		it.stopCleanup = nil
	}
}

func (it *PostgresStore) startCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := it.DeleteExpired(context.Background()); err != nil {
				logger.Warnf("Session cleanup failed: %v", err)
			}
		case <-stop:
			return
		}
	}
}
