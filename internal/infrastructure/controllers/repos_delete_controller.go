package controllers

import (
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depocheck/internal/domain/commands"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
)

// ReposDeleteController handles "repos delete <id>".
type ReposDeleteController struct {
	dashboard commands.Dashboard
	sessions  *session.FileSessionRepository
}

// NewReposDeleteController creates a new ReposDeleteController.
func NewReposDeleteController(
	dashboard commands.Dashboard,
	sessions *session.FileSessionRepository,
) *ReposDeleteController {
	return &ReposDeleteController{dashboard: dashboard, sessions: sessions}
}

// GetBind returns the Cobra command metadata for the delete controller.
func (it *ReposDeleteController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Parent: ReposParent,
		Use:    "delete <id>",
		Short:  "Stop tracking a repository",
		Args:   cobra.ExactArgs(1),
	}
}

// AddFlags registers the delete-specific flags.
func (it *ReposDeleteController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// Execute asks for confirmation and deletes the repository.
func (it *ReposDeleteController) Execute(cmd *cobra.Command, args []string) {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	scope := terminalScope(it.sessions, out)
	id := entities.RepositoryID(args[0])
	if !allowed(ctx, scope, repositoryPath(id)) {
		return
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		answer, err := newPrompter(cmd).Line(fmt.Sprintf("Delete repository %s? [y/N]", id))
		if err != nil || !strings.EqualFold(answer, "y") {
			_, _ = fmt.Fprintln(out, "Aborted.")
			return
		}
	}

	if _, err := it.dashboard.DeleteRepository(ctx, scope, id); err != nil {
		if !errors.Is(err, entities.ErrSessionEnded) {
			logger.Errorf("Failed to delete repository: %v", err)
		}
		return
	}
	_, _ = fmt.Fprintln(out, "Repository deleted successfully!")
}
