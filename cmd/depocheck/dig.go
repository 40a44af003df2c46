package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/depocheck/config"
	"github.com/rios0rios0/depocheck/internal"
)

func injectAppContext(cfg *config.Config) *internal.AppInternal {
	container := dig.New()

	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		panic(err)
	}

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}
