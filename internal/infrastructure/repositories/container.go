package repositories

import (
	"go.uber.org/dig"

	domain "github.com/rios0rios0/depocheck/internal/domain/repositories"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/backend"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
)

// RegisterProviders registers all repository providers with the DIG container.
// Web session storage is built per request by the server, not here.
func RegisterProviders(container *dig.Container) error {
	// Register the backend client and its HTTP repositories
	if err := container.Provide(backend.NewClient); err != nil {
		return err
	}
	if err := container.Provide(backend.NewHTTPAuthRepository); err != nil {
		return err
	}
	if err := container.Provide(backend.NewHTTPDependencyRepository); err != nil {
		return err
	}

	// Register the terminal client's session file
	if err := container.Provide(session.NewFileSessionRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *backend.HTTPAuthRepository) domain.AuthBackendRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(
		func(impl *backend.HTTPDependencyRepository) domain.DependencyBackendRepository {
			return impl
		},
	); err != nil {
		return err
	}

	return nil
}
