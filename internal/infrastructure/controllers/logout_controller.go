package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depocheck/internal/domain/commands"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
)

// LogoutController handles the "logout" subcommand.
type LogoutController struct {
	auth     commands.Auth
	sessions *session.FileSessionRepository
}

// NewLogoutController creates a new LogoutController.
func NewLogoutController(auth commands.Auth, sessions *session.FileSessionRepository) *LogoutController {
	return &LogoutController{auth: auth, sessions: sessions}
}

// GetBind returns the Cobra command metadata for the logout controller.
func (it *LogoutController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "logout",
		Short: "Forget the stored session",
		Long:  "Remove the local session file. The backend is not notified.",
		Args:  cobra.NoArgs,
	}
}

// Execute clears the session file.
func (it *LogoutController) Execute(cmd *cobra.Command, _ []string) {
	it.auth.Logout(commandContext(cmd), terminalScope(it.sessions, cmd.OutOrStdout()))
}
