package server

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/rios0rios0/depocheck/internal/domain/repositories"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
)

// HTTPNavigator answers the current request with a redirect. Only the first
// navigation of a request takes effect.
type HTTPNavigator struct {
	writer     http.ResponseWriter
	request    *http.Request
	redirected bool
}

var _ repositories.Navigator = (*HTTPNavigator)(nil)

// NewHTTPNavigator creates a navigator for one request.
func NewHTTPNavigator(w http.ResponseWriter, r *http.Request) *HTTPNavigator {
	return &HTTPNavigator{writer: w, request: r}
}

func (it *HTTPNavigator) Navigate(_ context.Context, path string) {
	if it.redirected {
		return
	}
	it.redirected = true
	http.Redirect(it.writer, it.request, path, http.StatusSeeOther)
}

// Redirected reports whether the response was already written.
func (it *HTTPNavigator) Redirected() bool {
	return it.redirected
}

// newScope builds the client scope of one browser request.
func newScope(
	manager *scs.SessionManager,
	secure bool,
	w http.ResponseWriter,
	r *http.Request,
) (repositories.ClientScope, *HTTPNavigator) {
	navigator := NewHTTPNavigator(w, r)
	return repositories.ClientScope{
		Session:   session.NewWebSessionRepository(manager, w, secure),
		Navigator: navigator,
		Views:     session.NewWebViewStateRepository(manager),
	}, navigator
}
