package controllers

import (
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depocheck/internal/domain/commands"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
)

// ReposParent groups the repository subcommands.
const ReposParent = "repos"

// ReposListController handles "repos list".
type ReposListController struct {
	dashboard commands.Dashboard
	sessions  *session.FileSessionRepository
}

// NewReposListController creates a new ReposListController.
func NewReposListController(
	dashboard commands.Dashboard,
	sessions *session.FileSessionRepository,
) *ReposListController {
	return &ReposListController{dashboard: dashboard, sessions: sessions}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ReposListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Parent: ReposParent,
		Use:    "list",
		Short:  "List tracked repositories",
		Args:   cobra.NoArgs,
	}
}

// Execute prints the repository table.
func (it *ReposListController) Execute(cmd *cobra.Command, _ []string) {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	scope := terminalScope(it.sessions, out)
	if !allowed(ctx, scope, entities.DashboardPath) {
		return
	}

	view, err := it.dashboard.Repositories(ctx, scope)
	if err != nil {
		if !errors.Is(err, entities.ErrSessionEnded) {
			logger.Errorf("Failed to fetch repositories: %v", err)
		}
		return
	}
	renderRepositories(out, view.Data)
}
