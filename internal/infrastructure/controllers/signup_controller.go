package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depocheck/internal/domain/commands"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/session"
)

// SignupController handles the "signup" subcommand.
type SignupController struct {
	auth     commands.Auth
	sessions *session.FileSessionRepository
}

// NewSignupController creates a new SignupController.
func NewSignupController(auth commands.Auth, sessions *session.FileSessionRepository) *SignupController {
	return &SignupController{auth: auth, sessions: sessions}
}

// GetBind returns the Cobra command metadata for the signup controller.
func (it *SignupController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "signup",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
	}
}

// AddFlags registers the signup-specific flags.
func (it *SignupController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("username", "u", "", "Username (prompted when empty)")
	cmd.Flags().StringP("email", "e", "", "Email address (prompted when empty)")
}

// Execute creates the account and stores the session file.
func (it *SignupController) Execute(cmd *cobra.Command, _ []string) {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	scope := terminalScope(it.sessions, out)
	if !allowed(ctx, scope, entities.LoginPath) {
		return
	}

	p := newPrompter(cmd)
	username, err := valueOrPrompt(cmd, p, "username", "Username")
	if err != nil {
		logger.Errorf("Signup aborted: %v", err)
		return
	}
	email, err := valueOrPrompt(cmd, p, "email", "Email")
	if err != nil {
		logger.Errorf("Signup aborted: %v", err)
		return
	}
	password, err := p.Secret("Password")
	if err != nil {
		logger.Errorf("Signup aborted: %v", err)
		return
	}

	if !it.auth.Signup(ctx, scope, username, email, password) {
		logger.Error("Failed to create account. Username or email may already be in use.")
		return
	}
	_, _ = fmt.Fprintf(out, "Account created, signed in as %s\n", scope.Session.Get(ctx).Username)
}
