package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/depocheck/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []any{
		NewServeController,
		NewLoginController,
		NewSignupController,
		NewLogoutController,
		NewReposListController,
		NewReposShowController,
		NewReposAddController,
		NewReposDeleteController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	serveController *ServeController,
	loginController *LoginController,
	signupController *SignupController,
	logoutController *LogoutController,
	reposListController *ReposListController,
	reposShowController *ReposShowController,
	reposAddController *ReposAddController,
	reposDeleteController *ReposDeleteController,
) *[]entities.Controller {
	return &[]entities.Controller{
		serveController,
		loginController,
		signupController,
		logoutController,
		reposListController,
		reposShowController,
		reposAddController,
		reposDeleteController,
	}
}
