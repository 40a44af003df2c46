//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depocheck/internal/domain/commands"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/domain/repositories"
)

// StubDashboardCommand is a stub implementation of commands.Dashboard.
type StubDashboardCommand struct {
	ListView   commands.RepositoryListView
	DetailView commands.RepositoryDetailView
	Err        error

	RepositoriesCallCount int
	LastID                entities.RepositoryID
	LastInput             entities.RepositoryInput
	DeletedIDs            []entities.RepositoryID
}

var _ commands.Dashboard = (*StubDashboardCommand)(nil)

func (s *StubDashboardCommand) Repositories(
	_ context.Context,
	_ repositories.ClientScope,
) (commands.RepositoryListView, error) {
	s.RepositoriesCallCount++
	return s.ListView, s.Err
}

func (s *StubDashboardCommand) Repository(
	_ context.Context,
	_ repositories.ClientScope,
	id entities.RepositoryID,
) (commands.RepositoryDetailView, error) {
	s.LastID = id
	return s.DetailView, s.Err
}

func (s *StubDashboardCommand) AddRepository(
	_ context.Context,
	_ repositories.ClientScope,
	input entities.RepositoryInput,
) (commands.RepositoryListView, error) {
	s.LastInput = input
	return s.ListView, s.Err
}

func (s *StubDashboardCommand) DeleteRepository(
	_ context.Context,
	_ repositories.ClientScope,
	id entities.RepositoryID,
) (commands.RepositoryListView, error) {
	s.DeletedIDs = append(s.DeletedIDs, id)
	return s.ListView, s.Err
}
