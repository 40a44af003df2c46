package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

// Auth is the interface for the authentication gateway.
type Auth interface {
	// Login signs in and commits the session. Any failure yields false.
	Login(ctx context.Context, scope repositories.ClientScope, username, password string) bool
	// Signup creates an account and commits the session, signing in
	// separately when the backend does not issue a token on sign-up.
	Signup(ctx context.Context, scope repositories.ClientScope, username, email, password string) bool
	// Logout clears the session and sends the client to the login view.
	Logout(ctx context.Context, scope repositories.ClientScope)
}

// AuthCommand implements Auth on top of the backend's auth endpoints.
type AuthCommand struct {
	backend repositories.AuthBackendRepository
}

// NewAuthCommand creates a new AuthCommand.
func NewAuthCommand(backend repositories.AuthBackendRepository) *AuthCommand {
	return &AuthCommand{backend: backend}
}

// Login posts the credentials and stores the returned token. The username
// confirmed by the backend wins over the one typed in.
func (it *AuthCommand) Login(
	ctx context.Context,
	scope repositories.ClientScope,
	username, password string,
) bool {
	result, err := it.backend.SignIn(ctx, username, password)
	if err != nil {
		logger.Errorf("Login failed: %v", err)
		return false
	}
	if result.Token == "" {
		logger.Error("Login failed: backend returned no token")
		return false
	}

	confirmed := result.Username
	if confirmed == "" {
		confirmed = username
	}

	if setErr := scope.Session.Set(ctx, result.Token, confirmed); setErr != nil {
		logger.Errorf("Login failed: could not store session: %v", setErr)
		return false
	}

	logger.Debugf("Signed in as %q", confirmed)
	return true
}

// Signup creates the account. A backend that defers credential issuance
// answers without a token, in which case the same credentials are used
// to sign in.
func (it *AuthCommand) Signup(
	ctx context.Context,
	scope repositories.ClientScope,
	username, email, password string,
) bool {
	token, err := it.backend.SignUp(ctx, username, email, password)
	if err != nil {
		logger.Errorf("Signup failed: %v", err)
		return false
	}

	if token == "" {
		logger.Debug("Signup returned no token, signing in with the new credentials")
		return it.Login(ctx, scope, username, password)
	}

	if setErr := scope.Session.Set(ctx, token, username); setErr != nil {
		logger.Errorf("Signup failed: could not store session: %v", setErr)
		return false
	}
	return true
}

// Logout is local only: the backend is not notified. It is safe to call
// more than once.
func (it *AuthCommand) Logout(ctx context.Context, scope repositories.ClientScope) {
	if err := scope.Session.Clear(ctx); err != nil {
		logger.Errorf("Failed to clear session: %v", err)
	}
	scope.Navigator.Navigate(ctx, entities.LoginPath)
}
