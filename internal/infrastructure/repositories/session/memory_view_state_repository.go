package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

// MemoryViewStateRepository keeps view state for the lifetime of the process.
type MemoryViewStateRepository struct {
	mu     sync.Mutex
	states map[string][]byte
}

var _ repositories.ViewStateRepository = (*MemoryViewStateRepository)(nil)

// NewMemoryViewStateRepository creates an empty view memory.
func NewMemoryViewStateRepository() *MemoryViewStateRepository {
	return &MemoryViewStateRepository{states: make(map[string][]byte)}
}

func (it *MemoryViewStateRepository) Load(_ context.Context, key string, target any) bool {
	it.mu.Lock()
	data, ok := it.states[key]
	it.mu.Unlock()

	return ok && json.Unmarshal(data, target) == nil
}

func (it *MemoryViewStateRepository) Save(_ context.Context, key string, state any) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode view state: %w", err)
	}

	it.mu.Lock()
	defer it.mu.Unlock()
	it.states[key] = data
	return nil
}
