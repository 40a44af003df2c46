package session

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

const (
	// TokenCookie is the cookie mirror the route guard reads.
	TokenCookie = "token"

	tokenKey    = "token"
	usernameKey = "username"
)

// WebSessionRepository keeps the session of one browser in two places: the
// scs session, which is the durable store, and the TokenCookie mirror.
// Set and Clear always update both.
type WebSessionRepository struct {
	manager *scs.SessionManager
	writer  http.ResponseWriter
	secure  bool
}

var _ repositories.SessionRepository = (*WebSessionRepository)(nil)

// NewWebSessionRepository binds the session manager to the response of the
// current request. ctx passed to the methods must come from that request.
func NewWebSessionRepository(
	manager *scs.SessionManager,
	writer http.ResponseWriter,
	secure bool,
) *WebSessionRepository {
	return &WebSessionRepository{manager: manager, writer: writer, secure: secure}
}

func (it *WebSessionRepository) Get(ctx context.Context) entities.Session {
	return entities.Session{
		Token:    it.manager.GetString(ctx, tokenKey),
		Username: it.manager.GetString(ctx, usernameKey),
	}
}

func (it *WebSessionRepository) Set(ctx context.Context, token, username string) error {
	// a new identity gets a new session id
	if err := it.manager.RenewToken(ctx); err != nil {
		return fmt.Errorf("failed to renew session: %w", err)
	}
	// nothing remembered for the previous identity survives
	if err := it.manager.Clear(ctx); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	it.manager.Put(ctx, tokenKey, token)
	it.manager.Put(ctx, usernameKey, username)

	http.SetCookie(it.writer, it.mirror(token, int(it.manager.Lifetime.Seconds())))
	return nil
}

func (it *WebSessionRepository) Clear(ctx context.Context) error {
	http.SetCookie(it.writer, it.mirror("", -1))
	if err := it.manager.Destroy(ctx); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func (it *WebSessionRepository) mirror(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     TokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   it.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// TokenFromRequest reads the cookie mirror. It is all the route guard sees.
func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
