package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind is the Cobra metadata a controller exposes.
type ControllerBind struct {
	Parent string // Name of the parent command, empty for top-level commands
	Use    string
	Short  string
	Long   string
	Args   cobra.PositionalArgs
}

// Controller is a CLI entrypoint wired into the root command.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}
