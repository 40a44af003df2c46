//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depocheck/internal/domain/commands"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

// StubAuthCommand is a stub implementation of commands.Auth.
// On success Login and Signup commit SessionToken to the scope.
type StubAuthCommand struct {
	LoginResult  bool
	SignupResult bool
	SessionToken string

	LoginCallCount  int
	SignupCallCount int
	LogoutCallCount int
	LastUsername    string
	LastEmail       string
}

var _ commands.Auth = (*StubAuthCommand)(nil)

func (s *StubAuthCommand) Login(
	ctx context.Context,
	scope repositories.ClientScope,
	username, _ string,
) bool {
	s.LoginCallCount++
	s.LastUsername = username
	if s.LoginResult {
		_ = scope.Session.Set(ctx, s.SessionToken, username)
	}
	return s.LoginResult
}

func (s *StubAuthCommand) Signup(
	ctx context.Context,
	scope repositories.ClientScope,
	username, email, _ string,
) bool {
	s.SignupCallCount++
	s.LastUsername = username
	s.LastEmail = email
	if s.SignupResult {
		_ = scope.Session.Set(ctx, s.SessionToken, username)
	}
	return s.SignupResult
}

func (s *StubAuthCommand) Logout(_ context.Context, _ repositories.ClientScope) {
	s.LogoutCallCount++
}
