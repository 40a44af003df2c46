//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"encoding/json"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

// InMemorySessionRepository implements repositories.SessionRepository in memory.
type InMemorySessionRepository struct {
	Session entities.Session

	SetErr     error
	SetCalls   int
	ClearErr   error
	ClearCalls int
}

var _ repositories.SessionRepository = (*InMemorySessionRepository)(nil)

// NewInMemorySessionRepository creates a store already holding token and username.
func NewInMemorySessionRepository(token, username string) *InMemorySessionRepository {
	return &InMemorySessionRepository{Session: entities.Session{Token: token, Username: username}}
}

func (s *InMemorySessionRepository) Get(_ context.Context) entities.Session {
	return s.Session
}

func (s *InMemorySessionRepository) Set(_ context.Context, token, username string) error {
	s.SetCalls++
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Session = entities.Session{Token: token, Username: username}
	return nil
}

func (s *InMemorySessionRepository) Clear(_ context.Context) error {
	s.ClearCalls++
	s.Session = entities.Session{}
	return s.ClearErr
}

// SpyNavigator implements repositories.Navigator and records every destination.
type SpyNavigator struct {
	Paths []string
}

var _ repositories.Navigator = (*SpyNavigator)(nil)

func (n *SpyNavigator) Navigate(_ context.Context, path string) {
	n.Paths = append(n.Paths, path)
}

// InMemoryViewStateRepository implements repositories.ViewStateRepository
// with JSON round trips, the same way durable implementations behave.
type InMemoryViewStateRepository struct {
	States  map[string][]byte
	SaveErr error
}

var _ repositories.ViewStateRepository = (*InMemoryViewStateRepository)(nil)

// NewInMemoryViewStateRepository creates an empty view memory.
func NewInMemoryViewStateRepository() *InMemoryViewStateRepository {
	return &InMemoryViewStateRepository{States: make(map[string][]byte)}
}

func (v *InMemoryViewStateRepository) Load(_ context.Context, key string, target any) bool {
	data, ok := v.States[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, target) == nil
}

func (v *InMemoryViewStateRepository) Save(_ context.Context, key string, state any) error {
	if v.SaveErr != nil {
		return v.SaveErr
	}
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	v.States[key] = data
	return nil
}

// NewScope builds a client scope over the given doubles.
func NewScope(
	session *InMemorySessionRepository,
	navigator *SpyNavigator,
	views *InMemoryViewStateRepository,
) repositories.ClientScope {
	return repositories.ClientScope{Session: session, Navigator: navigator, Views: views}
}
