package repositories

import (
	"context"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
)

// SignInResult is what the backend returns for valid credentials.
// Username is empty when the backend does not confirm it.
type SignInResult struct {
	Token    string
	Username string
}

// AuthBackendRepository abstracts the backend's authentication endpoints.
type AuthBackendRepository interface {
	SignIn(ctx context.Context, username, password string) (SignInResult, error)
	// SignUp returns the token when the backend issues one right away,
	// or an empty string when credentials must be exchanged by SignIn.
	SignUp(ctx context.Context, username, email, password string) (string, error)
}

// DependencyBackendRepository abstracts the backend's repository endpoints.
// Every call carries the bearer token; a rejected token surfaces as
// entities.ErrUnauthorized and any other failure wraps entities.ErrRequestFailed.
type DependencyBackendRepository interface {
	ListRepositories(ctx context.Context, token string) ([]entities.Repository, error)
	AddRepository(ctx context.Context, token string, input entities.RepositoryInput) error
	RepositoryDependencies(
		ctx context.Context, token string, id entities.RepositoryID,
	) (entities.RepositoryReport, error)
	DeleteRepository(ctx context.Context, token string, id entities.RepositoryID) error
}
