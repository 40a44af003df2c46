package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

const (
	repositoriesViewKey = "view.repositories"
	repositoryViewKey   = "view.repository"
)

// RepositoryListView is the state of the repository list.
type RepositoryListView = entities.View[[]entities.Repository]

// RepositoryDetailView is the state of one repository's dependency report.
type RepositoryDetailView = entities.View[entities.RepositoryReport]

// Dashboard is the interface for the repository list and detail views.
// Each call runs one idle -> loading -> displayed | error-cleared cycle and
// returns the resulting view together with the failure, if any. A failed
// load keeps whatever the view displayed before.
type Dashboard interface {
	Repositories(ctx context.Context, scope repositories.ClientScope) (RepositoryListView, error)
	Repository(
		ctx context.Context, scope repositories.ClientScope, id entities.RepositoryID,
	) (RepositoryDetailView, error)
	AddRepository(
		ctx context.Context, scope repositories.ClientScope, input entities.RepositoryInput,
	) (RepositoryListView, error)
	DeleteRepository(
		ctx context.Context, scope repositories.ClientScope, id entities.RepositoryID,
	) (RepositoryListView, error)
}

// DashboardCommand is the one parameterized view behind both the list and
// the detail page. It only talks to the backend through Repositories.
type DashboardCommand struct {
	repositories Repositories
}

// NewDashboardCommand creates a new DashboardCommand.
func NewDashboardCommand(repositories Repositories) *DashboardCommand {
	return &DashboardCommand{repositories: repositories}
}

// Repositories loads the list, on first display and on every refresh.
func (it *DashboardCommand) Repositories(
	ctx context.Context,
	scope repositories.ClientScope,
) (RepositoryListView, error) {
	return loadView(ctx, scope, repositoriesViewKey, nil, func() ([]entities.Repository, error) {
		return it.repositories.Fetch(ctx, scope)
	})
}

// Repository loads the dependency report of the selected repository. Only
// the last opened report is remembered.
func (it *DashboardCommand) Repository(
	ctx context.Context,
	scope repositories.ClientScope,
	id entities.RepositoryID,
) (RepositoryDetailView, error) {
	owned := func(view RepositoryDetailView) bool {
		return view.Data.Repository != nil && view.Data.Repository.ID == id
	}
	return loadView(ctx, scope, repositoryViewKey, owned, func() (entities.RepositoryReport, error) {
		return it.repositories.Details(ctx, scope, id)
	})
}

// AddRepository validates the form, registers the repository and reloads
// the list. Invalid input never reaches the backend.
func (it *DashboardCommand) AddRepository(
	ctx context.Context,
	scope repositories.ClientScope,
	input entities.RepositoryInput,
) (RepositoryListView, error) {
	normalized := input.Normalize()
	if err := normalized.Validate(); err != nil {
		return storedView[[]entities.Repository](ctx, scope, repositoriesViewKey), err
	}

	if err := it.repositories.Add(ctx, scope, normalized); err != nil {
		if !errors.Is(err, entities.ErrSessionEnded) {
			logger.Errorf("Failed to add repository %q: %v", normalized.Name, err)
		}
		return storedView[[]entities.Repository](ctx, scope, repositoriesViewKey), err
	}

	logger.Infof("Added repository %q", normalized.Name)
	view, err := it.Repositories(ctx, scope)
	if err != nil && !errors.Is(err, entities.ErrSessionEnded) {
		// the repository was added, only the displayed list is stale
		return view, nil
	}
	return view, err
}

// DeleteRepository removes the repository on the backend and then from the
// displayed list, without reloading it.
func (it *DashboardCommand) DeleteRepository(
	ctx context.Context,
	scope repositories.ClientScope,
	id entities.RepositoryID,
) (RepositoryListView, error) {
	view := storedView[[]entities.Repository](ctx, scope, repositoriesViewKey)

	if err := it.repositories.Delete(ctx, scope, id); err != nil {
		if !errors.Is(err, entities.ErrSessionEnded) {
			logger.Errorf("Failed to delete repository %s: %v", id, err)
		}
		return view, err
	}

	logger.Infof("Deleted repository %s", id)
	view.Commit(entities.WithoutRepository(view.Data, id))
	saveView(ctx, scope, repositoriesViewKey, view)
	return view, nil
}

// loadView runs one load cycle for the view stored under key. A stored
// view that owned rejects starts over from idle.
func loadView[T any](
	ctx context.Context,
	scope repositories.ClientScope,
	key string,
	owned func(entities.View[T]) bool,
	fetch func() (T, error),
) (entities.View[T], error) {
	view := storedView[T](ctx, scope, key)
	if owned != nil && !owned(view) {
		view = entities.View[T]{State: entities.ViewIdle}
	}
	view.Begin()

	data, err := fetch()
	if err != nil {
		view.Fail()
		if errors.Is(err, entities.ErrSessionEnded) {
			// the session is gone, so is the memory of its views
			return view, err
		}
		logger.Errorf("Failed to load %s: %v", key, err)
		saveView(ctx, scope, key, view)
		return view, fmt.Errorf("failed to load %s: %w", key, err)
	}

	view.Commit(data)
	saveView(ctx, scope, key, view)
	return view, nil
}

func storedView[T any](ctx context.Context, scope repositories.ClientScope, key string) entities.View[T] {
	view := entities.View[T]{State: entities.ViewIdle}
	if scope.Views != nil {
		scope.Views.Load(ctx, key, &view)
	}
	return view
}

func saveView[T any](ctx context.Context, scope repositories.ClientScope, key string, view entities.View[T]) {
	if scope.Views == nil {
		return
	}
	if err := scope.Views.Save(ctx, key, view); err != nil {
		logger.Warnf("Failed to remember %s: %v", key, err)
	}
}
