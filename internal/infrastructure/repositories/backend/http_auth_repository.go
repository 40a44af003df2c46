package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

// HTTPAuthRepository implements repositories.AuthBackendRepository over the
// /api/auth endpoints.
type HTTPAuthRepository struct {
	client *Client
}

// NewHTTPAuthRepository creates a new HTTPAuthRepository.
func NewHTTPAuthRepository(client *Client) *HTTPAuthRepository {
	return &HTTPAuthRepository{client: client}
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// SignIn exchanges credentials for a token.
func (it *HTTPAuthRepository) SignIn(
	ctx context.Context,
	username, password string,
) (repositories.SignInResult, error) {
	var resp tokenResponse
	err := it.client.doRequest(ctx, http.MethodPost, "/api/auth/signin", "",
		signInRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return repositories.SignInResult{}, credentialsError("sign-in", err)
	}
	return repositories.SignInResult{Token: resp.Token, Username: resp.Username}, nil
}

// SignUp creates an account. The token is empty when the backend expects
// a separate sign-in.
func (it *HTTPAuthRepository) SignUp(
	ctx context.Context,
	username, email, password string,
) (string, error) {
	var resp tokenResponse
	err := it.client.doRequest(ctx, http.MethodPost, "/api/auth/signup", "",
		signUpRequest{Username: username, Email: email, Password: password}, &resp)
	if err != nil {
		return "", credentialsError("sign-up", err)
	}
	return resp.Token, nil
}

// credentialsError turns a 401 from an auth endpoint into a plain request
// failure: there is no session yet that it could have ended.
func credentialsError(operation string, err error) error {
	if errors.Is(err, entities.ErrUnauthorized) {
		return fmt.Errorf("%w: %s refused", entities.ErrRequestFailed, operation)
	}
	return err
}
