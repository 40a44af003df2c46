package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/backend"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
)

const requestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (it *statusRecorder) WriteHeader(status int) {
	it.status = status
	it.ResponseWriter.WriteHeader(status)
}

// requestLogger tags every request with an id and logs its outcome.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(recorder, r)

		logger.WithFields(logger.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     recorder.status,
			"duration":   time.Since(start).String(),
		}).Info("Handled request")
	})
}

// backendHost makes the hostname the dashboard was reached under available
// to the backend client, which selects its origin from it.
func backendHost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(backend.WithHost(r.Context(), r.Host)))
	})
}

// routeGuard gates the guarded paths on the token cookie alone.
func routeGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !entities.IsGuardedPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		decision := entities.EvaluateRoute(r.URL.Path, session.TokenFromRequest(r) != "")
		if decision.Redirects() {
			logger.Debugf("Guard redirects %s to %s", r.URL.Path, decision.Location)
			http.Redirect(w, r, decision.Location, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
