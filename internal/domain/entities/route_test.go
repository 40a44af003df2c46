//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
)

func TestEvaluateRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		path         string
		tokenPresent bool
		wantRedirect bool
		wantLocation string
	}{
		{"login with token goes to dashboard", "/login", true, true, "/dashboard"},
		{"login without token is allowed", "/login", false, false, ""},
		{"root with token is allowed", "/", true, false, ""},
		{"root without token is allowed", "/", false, false, ""},
		{"dashboard without token goes to login", "/dashboard", false, true, "/login"},
		{"dashboard with token is allowed", "/dashboard", true, false, ""},
		{"dashboard sub-path without token goes to login", "/dashboard/repositories/1", false, true, "/login"},
		{"dashboard sub-path with token is allowed", "/dashboard/repositories/new", true, false, ""},
	}

	for _, tt := range tests {
		t.Run("should decide "+tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			path := tt.path

			// when
			decision := entities.EvaluateRoute(path, tt.tokenPresent)

			// then
			assert.Equal(t, tt.wantRedirect, decision.Redirects())
			assert.Equal(t, tt.wantLocation, decision.Location)
		})
	}
}

func TestEvaluateRouteProperties(t *testing.T) {
	t.Parallel()

	t.Run("should never send public paths to login", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"/", "/login"} {
			for _, token := range []bool{true, false} {
				// when
				decision := entities.EvaluateRoute(path, token)

				// then
				assert.NotEqual(t, entities.LoginPath, decision.Location, "path %s token %v", path, token)
			}
		}
	})

	t.Run("should gate every protected path on the token alone", func(t *testing.T) {
		t.Parallel()

		// given
		paths := []string{"/dashboard", "/dashboard/", "/dashboard/refresh", "/dashboard/repositories/42"}

		for _, path := range paths {
			// when
			without := entities.EvaluateRoute(path, false)
			with := entities.EvaluateRoute(path, true)

			// then
			assert.True(t, without.Redirects(), path)
			assert.Equal(t, entities.LoginPath, without.Location, path)
			assert.False(t, with.Redirects(), path)
		}
	})
}

func TestIsGuardedPath(t *testing.T) {
	t.Parallel()

	t.Run("should guard the root, login and dashboard subtree", func(t *testing.T) {
		t.Parallel()

		// given
		guarded := []string{"/", "/login", "/dashboard", "/dashboard/repositories/1"}

		// when / then
		for _, path := range guarded {
			assert.True(t, entities.IsGuardedPath(path), path)
		}
	})

	t.Run("should let other paths bypass the guard", func(t *testing.T) {
		t.Parallel()

		// given
		bypassed := []string{"/health", "/auth/login", "/static/app.css", "/dashboardx", "/login/extra"}

		// when / then
		for _, path := range bypassed {
			assert.False(t, entities.IsGuardedPath(path), path)
		}
	})
}
