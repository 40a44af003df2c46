package entities

import "errors"

var (
	// ErrSessionMissing is returned when no token is available locally.
	ErrSessionMissing = errors.New("no session token available")

	// ErrUnauthorized is returned by the backend client when the API rejects the token.
	ErrUnauthorized = errors.New("backend rejected the session token")

	// ErrSessionEnded is returned after the session was torn down, either
	// because it was missing or because the backend rejected it.
	ErrSessionEnded = errors.New("session ended, sign in again")

	// ErrRequestFailed wraps every other backend failure: transport errors,
	// unexpected statuses and undecodable payloads.
	ErrRequestFailed = errors.New("backend request failed")

	// ErrInvalidInput is returned when a form fails local validation.
	ErrInvalidInput = errors.New("invalid input")
)
