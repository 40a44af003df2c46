package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/mux"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depocheck/config"
	"github.com/rios0rios0/depocheck/internal/domain/commands"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "login", "dashboard", "repository", "new_repository"} //nolint:gochecknoglobals // read-only table

// Server renders the web dashboard on top of the domain commands.
type Server struct {
	auth      commands.Auth
	dashboard commands.Dashboard
	cfg       *config.Config
	pages     map[string]*template.Template
}

// NewServer parses the page templates once.
func NewServer(auth commands.Auth, dashboard commands.Dashboard, cfg *config.Config) (*Server, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		page, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
		}
		pages[name] = page
	}

	return &Server{auth: auth, dashboard: dashboard, cfg: cfg, pages: pages}, nil
}

// Handler builds the dashboard's HTTP handler around the given session manager.
// Middlewares run outermost first: request logging, backend host selection,
// session loading and the route guard.
func (it *Server) Handler(manager *scs.SessionManager) http.Handler {
	h := &handlers{server: it, manager: manager}

	router := mux.NewRouter()
	router.HandleFunc("/health", h.health).Methods(http.MethodGet)
	router.HandleFunc("/", h.home).Methods(http.MethodGet)
	router.HandleFunc("/login", h.loginPage).Methods(http.MethodGet)

	auth := router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", h.login).Methods(http.MethodPost)
	auth.HandleFunc("/signup", h.signup).Methods(http.MethodPost)
	auth.HandleFunc("/logout", h.logout).Methods(http.MethodPost)

	dashboard := router.PathPrefix("/dashboard").Subrouter()
	dashboard.HandleFunc("", h.repositories).Methods(http.MethodGet)
	dashboard.HandleFunc("/refresh", h.refresh).Methods(http.MethodPost)
	dashboard.HandleFunc("/repositories/new", h.newRepository).Methods(http.MethodGet)
	dashboard.HandleFunc("/repositories", h.addRepository).Methods(http.MethodPost)
	dashboard.HandleFunc("/repositories/{id}", h.repository).Methods(http.MethodGet)
	dashboard.HandleFunc("/repositories/{id}/delete", h.deleteRepository).Methods(http.MethodPost)

	return requestLogger(backendHost(manager.LoadAndSave(routeGuard(router))))
}

// ListenAndServe serves the dashboard until ctx is cancelled, then shuts down
// gracefully.
func (it *Server) ListenAndServe(ctx context.Context, manager *scs.SessionManager) error {
	srv := &http.Server{
		Addr:              it.cfg.Server.Address,
		Handler:           it.Handler(manager),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Dashboard listening on %s", it.cfg.Server.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("dashboard server failed: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down dashboard...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
