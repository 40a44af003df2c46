//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

// SignInCall records a single invocation of SignIn.
type SignInCall struct {
	Username string
	Password string
}

// SignUpCall records a single invocation of SignUp.
type SignUpCall struct {
	Username string
	Email    string
	Password string
}

// StubAuthBackendRepository implements repositories.AuthBackendRepository.
type StubAuthBackendRepository struct {
	// --- SignIn ---
	SignInResult repositories.SignInResult
	SignInErr    error
	SignInCalls  []SignInCall

	// --- SignUp ---
	SignUpToken string
	SignUpErr   error
	SignUpCalls []SignUpCall
}

var _ repositories.AuthBackendRepository = (*StubAuthBackendRepository)(nil)

func (s *StubAuthBackendRepository) SignIn(
	_ context.Context, username, password string,
) (repositories.SignInResult, error) {
	s.SignInCalls = append(s.SignInCalls, SignInCall{Username: username, Password: password})
	if s.SignInErr != nil {
		return repositories.SignInResult{}, s.SignInErr
	}
	return s.SignInResult, nil
}

func (s *StubAuthBackendRepository) SignUp(
	_ context.Context, username, email, password string,
) (string, error) {
	s.SignUpCalls = append(s.SignUpCalls, SignUpCall{Username: username, Email: email, Password: password})
	if s.SignUpErr != nil {
		return "", s.SignUpErr
	}
	return s.SignUpToken, nil
}

// SpyDependencyBackendRepository implements repositories.DependencyBackendRepository
// as a configurable spy.
type SpyDependencyBackendRepository struct {
	// --- ListRepositories ---
	Repositories []entities.Repository
	ListErr      error

	// --- AddRepository ---
	AddErr error
	Added  []entities.RepositoryInput

	// --- RepositoryDependencies ---
	Report        entities.RepositoryReport
	DependencyErr error

	// --- DeleteRepository ---
	DeleteErr error
	Deleted   []entities.RepositoryID

	// spy: every token presented, in call order
	Tokens []string
}

var _ repositories.DependencyBackendRepository = (*SpyDependencyBackendRepository)(nil)

// Calls returns how many requests reached the backend.
func (s *SpyDependencyBackendRepository) Calls() int {
	return len(s.Tokens)
}

func (s *SpyDependencyBackendRepository) ListRepositories(
	_ context.Context, token string,
) ([]entities.Repository, error) {
	s.Tokens = append(s.Tokens, token)
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Repositories, nil
}

func (s *SpyDependencyBackendRepository) AddRepository(
	_ context.Context, token string, input entities.RepositoryInput,
) error {
	s.Tokens = append(s.Tokens, token)
	s.Added = append(s.Added, input)
	return s.AddErr
}

func (s *SpyDependencyBackendRepository) RepositoryDependencies(
	_ context.Context, token string, _ entities.RepositoryID,
) (entities.RepositoryReport, error) {
	s.Tokens = append(s.Tokens, token)
	if s.DependencyErr != nil {
		return entities.RepositoryReport{}, s.DependencyErr
	}
	return s.Report, nil
}

func (s *SpyDependencyBackendRepository) DeleteRepository(
	_ context.Context, token string, id entities.RepositoryID,
) error {
	s.Tokens = append(s.Tokens, token)
	s.Deleted = append(s.Deleted, id)
	return s.DeleteErr
}
