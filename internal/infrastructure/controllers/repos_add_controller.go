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

// ReposAddController handles "repos add".
type ReposAddController struct {
	dashboard commands.Dashboard
	sessions  *session.FileSessionRepository
}

// NewReposAddController creates a new ReposAddController.
func NewReposAddController(
	dashboard commands.Dashboard,
	sessions *session.FileSessionRepository,
) *ReposAddController {
	return &ReposAddController{dashboard: dashboard, sessions: sessions}
}

// GetBind returns the Cobra command metadata for the add controller.
func (it *ReposAddController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Parent: ReposParent,
		Use:    "add",
		Short:  "Track a new repository",
		Long: `Register a repository for dependency checks. The access token is only
needed for private repositories; pass --ask-token to type it without echo.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags registers the repository form.
func (it *ReposAddController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Repository name")
	cmd.Flags().String("username", "", "Owner on the hosting service")
	cmd.Flags().String("url", "", "Repository URL")
	cmd.Flags().String("branch", "main", "Branch to check")
	cmd.Flags().String("type", entities.ProjectTypes[0],
		"Project type, one of "+strings.Join(entities.ProjectTypes, ", "))
	cmd.Flags().Bool("ask-token", false, "Prompt for an access token")
}

// Execute validates the form, registers the repository and prints the list.
func (it *ReposAddController) Execute(cmd *cobra.Command, _ []string) {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	scope := terminalScope(it.sessions, out)
	if !allowed(ctx, scope, entities.DashboardPath) {
		return
	}

	input := entities.RepositoryInput{}
	input.Name, _ = cmd.Flags().GetString("name")
	input.Username, _ = cmd.Flags().GetString("username")
	input.URL, _ = cmd.Flags().GetString("url")
	input.Branch, _ = cmd.Flags().GetString("branch")
	input.Type, _ = cmd.Flags().GetString("type")
	if ask, _ := cmd.Flags().GetBool("ask-token"); ask {
		token, err := newPrompter(cmd).Secret("Access token")
		if err != nil {
			logger.Errorf("Add aborted: %v", err)
			return
		}
		input.Token = token
	}

	view, err := it.dashboard.AddRepository(ctx, scope, input)
	switch {
	case errors.Is(err, entities.ErrSessionEnded):
		return
	case errors.Is(err, entities.ErrInvalidInput):
		logger.Errorf("Invalid repository: %v", err)
		return
	case err != nil:
		logger.Errorf("Failed to add repository: %v", err)
		return
	}

	_, _ = fmt.Fprintln(out, "Repository added successfully!")
	if view.State == entities.ViewDisplayed {
		renderRepositories(out, view.Data)
	}
}
