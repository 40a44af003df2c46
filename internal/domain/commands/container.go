package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewAuthCommand); err != nil {
		return err
	}
	if err := container.Provide(NewRepositoriesCommand); err != nil {
		return err
	}
	if err := container.Provide(NewDashboardCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *AuthCommand) Auth {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *RepositoriesCommand) Repositories {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *DashboardCommand) Dashboard {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
