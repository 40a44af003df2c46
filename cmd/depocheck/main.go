package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/depocheck/config"
	"github.com/rios0rios0/depocheck/internal"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/infrastructure/controllers"
)

// flagged is implemented by controllers that own flags.
type flagged interface {
	AddFlags(cmd *cobra.Command)
}

//nolint:gochecknoglobals // read-only table
var parentShorts = map[string]string{
	controllers.ReposParent: "Manage tracked repositories",
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "depocheck",
		Short: "Dashboard for outdated repository dependencies",
		Long: `Depocheck tracks source repositories and reports which of their
dependencies have newer releases.

Usage modes:
  depocheck serve        Serve the web dashboard
  depocheck login        Sign in from the terminal
  depocheck repos list   List tracked repositories`,
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	parents := map[string]*cobra.Command{}
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  bind.Args,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if fc, ok := ctrl.(flagged); ok {
			fc.AddFlags(subCmd)
		}

		parentFor(rootCmd, parents, bind).AddCommand(subCmd)
	}
}

// parentFor returns the command bind hangs under, creating group commands
// on first use.
func parentFor(rootCmd *cobra.Command, parents map[string]*cobra.Command, bind entities.ControllerBind) *cobra.Command {
	if bind.Parent == "" {
		return rootCmd
	}
	if parent, ok := parents[bind.Parent]; ok {
		return parent
	}

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	parent := &cobra.Command{
		Use:   bind.Parent,
		Short: parentShorts[bind.Parent],
	}
	parents[bind.Parent] = parent
	rootCmd.AddCommand(parent)
	return parent
}

// configPath reads --config before cobra runs, because the container
// needs the configuration to build the controllers cobra dispatches to.
func configPath(args []string) string {
	flags := pflag.NewFlagSet("bootstrap", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Usage = func() {}
	path := flags.StringP("config", "c", "", "")
	_ = flags.Parse(args)
	return *path
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cfg, err := config.LoadOrDefault(configPath(os.Args[1:]))
	if err != nil {
		logger.Fatalf("Failed to load config: %s", err)
	}

	cobraRoot := buildRootCommand()

	// Add all subcommands
	appContext := injectAppContext(cfg)
	addSubcommands(cobraRoot, appContext)

	if execErr := cobraRoot.Execute(); execErr != nil {
		logger.Fatalf("Error executing 'depocheck': %s", execErr)
	}
}
