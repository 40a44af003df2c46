package server

import (
	"go.uber.org/dig"
)

// RegisterProviders registers the web dashboard with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(NewServer)
}
