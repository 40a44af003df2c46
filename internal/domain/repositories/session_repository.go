package repositories

import (
	"context"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
)

// SessionRepository stores the session of one client.
// Implementations that keep more than one representation of the token
// (e.g. a durable store plus a cookie mirror) must update all of them on
// every Set and Clear.
type SessionRepository interface {
	Get(ctx context.Context) entities.Session
	Set(ctx context.Context, token, username string) error
	Clear(ctx context.Context) error
}
