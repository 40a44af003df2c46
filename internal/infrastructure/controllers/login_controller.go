package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depocheck/internal/domain/commands"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
)

// LoginController handles the "login" subcommand.
type LoginController struct {
	auth     commands.Auth
	sessions *session.FileSessionRepository
}

// NewLoginController creates a new LoginController.
func NewLoginController(auth commands.Auth, sessions *session.FileSessionRepository) *LoginController {
	return &LoginController{auth: auth, sessions: sessions}
}

// GetBind returns the Cobra command metadata for the login controller.
func (it *LoginController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "login",
		Short: "Sign in to the dependency backend",
		Long: `Sign in with a username and password. The password is read without
echo from the terminal, or as a line from standard input when piped.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags registers the login-specific flags.
func (it *LoginController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("username", "u", "", "Username (prompted when empty)")
}

// Execute signs in and stores the session file.
func (it *LoginController) Execute(cmd *cobra.Command, _ []string) {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	scope := terminalScope(it.sessions, out)
	if !allowed(ctx, scope, entities.LoginPath) {
		return
	}

	p := newPrompter(cmd)
	username, err := valueOrPrompt(cmd, p, "username", "Username")
	if err != nil {
		logger.Errorf("Login aborted: %v", err)
		return
	}
	password, err := p.Secret("Password")
	if err != nil {
		logger.Errorf("Login aborted: %v", err)
		return
	}

	if !it.auth.Login(ctx, scope, username, password) {
		logger.Error("Invalid username or password")
		return
	}
	_, _ = fmt.Fprintf(out, "Signed in as %s\n", scope.Session.Get(ctx).Username)
}
