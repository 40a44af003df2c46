package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

// Repositories is the capability set the repository views are built on.
// Every call needs a session; a missing or rejected token ends it.
type Repositories interface {
	Fetch(ctx context.Context, scope repositories.ClientScope) ([]entities.Repository, error)
	Details(
		ctx context.Context, scope repositories.ClientScope, id entities.RepositoryID,
	) (entities.RepositoryReport, error)
	Add(ctx context.Context, scope repositories.ClientScope, input entities.RepositoryInput) error
	Delete(ctx context.Context, scope repositories.ClientScope, id entities.RepositoryID) error
}

// RepositoriesCommand implements Repositories against the backend client.
type RepositoriesCommand struct {
	auth    Auth
	backend repositories.DependencyBackendRepository
}

// NewRepositoriesCommand creates a new RepositoriesCommand.
func NewRepositoriesCommand(
	auth Auth,
	backend repositories.DependencyBackendRepository,
) *RepositoriesCommand {
	return &RepositoriesCommand{auth: auth, backend: backend}
}

// Fetch lists the repositories of the signed-in user.
func (it *RepositoriesCommand) Fetch(
	ctx context.Context,
	scope repositories.ClientScope,
) ([]entities.Repository, error) {
	return authorized(ctx, it.auth, scope, func(token string) ([]entities.Repository, error) {
		return it.backend.ListRepositories(ctx, token)
	})
}

// Details returns the dependency report of one repository.
func (it *RepositoriesCommand) Details(
	ctx context.Context,
	scope repositories.ClientScope,
	id entities.RepositoryID,
) (entities.RepositoryReport, error) {
	return authorized(ctx, it.auth, scope, func(token string) (entities.RepositoryReport, error) {
		return it.backend.RepositoryDependencies(ctx, token, id)
	})
}

// Add registers a repository for tracking.
func (it *RepositoriesCommand) Add(
	ctx context.Context,
	scope repositories.ClientScope,
	input entities.RepositoryInput,
) error {
	_, err := authorized(ctx, it.auth, scope, func(token string) (struct{}, error) {
		return struct{}{}, it.backend.AddRepository(ctx, token, input)
	})
	return err
}

// Delete stops tracking a repository.
func (it *RepositoriesCommand) Delete(
	ctx context.Context,
	scope repositories.ClientScope,
	id entities.RepositoryID,
) error {
	_, err := authorized(ctx, it.auth, scope, func(token string) (struct{}, error) {
		return struct{}{}, it.backend.DeleteRepository(ctx, token, id)
	})
	return err
}

// authorized runs call with the session token. Without a token the session
// ends before any request is made; a token rejected by the backend ends it
// after exactly one request. Nothing is retried.
func authorized[T any](
	ctx context.Context,
	auth Auth,
	scope repositories.ClientScope,
	call func(token string) (T, error),
) (T, error) {
	var zero T

	token := scope.Session.Get(ctx).Token
	if token == "" {
		logger.Warn("No session token, signing out")
		auth.Logout(ctx, scope)
		return zero, fmt.Errorf("%w: %w", entities.ErrSessionEnded, entities.ErrSessionMissing)
	}

	result, err := call(token)
	if err != nil {
		if errors.Is(err, entities.ErrUnauthorized) {
			logger.Warn("Backend rejected the session token, signing out")
			auth.Logout(ctx, scope)
			return zero, fmt.Errorf("%w: %w", entities.ErrSessionEnded, err)
		}
		return zero, err
	}

	return result, nil
}
