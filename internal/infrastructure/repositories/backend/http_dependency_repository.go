package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
)

// HTTPDependencyRepository implements repositories.DependencyBackendRepository
// over the /api/deps endpoints.
type HTTPDependencyRepository struct {
	client *Client
}

// NewHTTPDependencyRepository creates a new HTTPDependencyRepository.
func NewHTTPDependencyRepository(client *Client) *HTTPDependencyRepository {
	return &HTTPDependencyRepository{client: client}
}

// ListRepositories returns the repositories tracked for the token's owner.
// A payload without a repositories array is treated as an empty list.
func (it *HTTPDependencyRepository) ListRepositories(
	ctx context.Context,
	token string,
) ([]entities.Repository, error) {
	var resp struct {
		Repositories json.RawMessage `json:"repositories"`
	}
	if err := it.client.doRequest(ctx, http.MethodPost, "/api/deps/repositories", token, nil, &resp); err != nil {
		return nil, err
	}

	var repos []entities.Repository
	if len(resp.Repositories) == 0 || resp.Repositories[0] != '[' {
		logger.Warnf("Repositories response carries no repositories array: %s", string(resp.Repositories))
		return []entities.Repository{}, nil
	}
	if err := json.Unmarshal(resp.Repositories, &repos); err != nil {
		return nil, fmt.Errorf("%w: failed to parse repositories: %w", entities.ErrRequestFailed, err)
	}
	return repos, nil
}

// AddRepository registers a repository for scanning.
func (it *HTTPDependencyRepository) AddRepository(
	ctx context.Context,
	token string,
	input entities.RepositoryInput,
) error {
	return it.client.doRequest(ctx, http.MethodPost, "/api/deps/add-repository", token, input, nil)
}

// RepositoryDependencies returns the dependency report of one repository.
func (it *HTTPDependencyRepository) RepositoryDependencies(
	ctx context.Context,
	token string,
	id entities.RepositoryID,
) (entities.RepositoryReport, error) {
	endpoint := fmt.Sprintf("/api/deps/repository/%s/dependencies", url.PathEscape(id.String()))

	var report entities.RepositoryReport
	if err := it.client.doRequest(ctx, http.MethodPost, endpoint, token, nil, &report); err != nil {
		return entities.RepositoryReport{}, err
	}
	return report, nil
}

// DeleteRepository stops tracking a repository.
func (it *HTTPDependencyRepository) DeleteRepository(
	ctx context.Context,
	token string,
	id entities.RepositoryID,
) error {
	endpoint := "/api/deps/repository/" + url.PathEscape(id.String())
	return it.client.doRequest(ctx, http.MethodDelete, endpoint, token, nil, nil)
}
