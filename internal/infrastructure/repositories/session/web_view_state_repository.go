package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexedwards/scs/v2"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

// WebViewStateRepository stores view state as JSON inside the scs session,
// so it is dropped together with the session on logout.
type WebViewStateRepository struct {
	manager *scs.SessionManager
}

var _ repositories.ViewStateRepository = (*WebViewStateRepository)(nil)

// NewWebViewStateRepository creates a new WebViewStateRepository.
func NewWebViewStateRepository(manager *scs.SessionManager) *WebViewStateRepository {
	return &WebViewStateRepository{manager: manager}
}

func (it *WebViewStateRepository) Load(ctx context.Context, key string, target any) bool {
	data := it.manager.GetBytes(ctx, key)
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		logger.Warnf("Discarding unreadable view state %q: %v", key, err)
		it.manager.Remove(ctx, key)
		return false
	}
	return true
}

func (it *WebViewStateRepository) Save(ctx context.Context, key string, state any) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode view state: %w", err)
	}
	it.manager.Put(ctx, key, data)
	return nil
}
