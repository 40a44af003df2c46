package controllers

import (
	"errors"
	"net/url"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depocheck/internal/domain/commands"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
)

// ReposShowController handles "repos show <id>".
type ReposShowController struct {
	dashboard commands.Dashboard
	sessions  *session.FileSessionRepository
}

// NewReposShowController creates a new ReposShowController.
func NewReposShowController(
	dashboard commands.Dashboard,
	sessions *session.FileSessionRepository,
) *ReposShowController {
	return &ReposShowController{dashboard: dashboard, sessions: sessions}
}

// GetBind returns the Cobra command metadata for the show controller.
func (it *ReposShowController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Parent: ReposParent,
		Use:    "show <id>",
		Short:  "Show the dependency report of a repository",
		Args:   cobra.ExactArgs(1),
	}
}

// Execute prints the repository and its dependencies.
func (it *ReposShowController) Execute(cmd *cobra.Command, args []string) {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	scope := terminalScope(it.sessions, out)
	id := entities.RepositoryID(args[0])
	if !allowed(ctx, scope, repositoryPath(id)) {
		return
	}

	view, err := it.dashboard.Repository(ctx, scope, id)
	if err != nil {
		if !errors.Is(err, entities.ErrSessionEnded) {
			logger.Errorf("Failed to fetch repository details: %v", err)
		}
		return
	}
	renderReport(out, view.Data)
}

func repositoryPath(id entities.RepositoryID) string {
	return entities.DashboardPath + "/repositories/" + url.PathEscape(id.String())
}
