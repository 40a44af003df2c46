package controllers

import (
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depocheck/config"
	"github.com/rios0rios0/depocheck/internal/domain/entities"
	"github.com/rios0rios0/depocheck/internal/infrastructure/repositories/sessionstore"
	"github.com/rios0rios0/depocheck/internal/infrastructure/server"
)

// ServeController handles the "serve" subcommand, the web dashboard.
type ServeController struct {
	server *server.Server
	cfg    *config.Config
}

// NewServeController creates a new ServeController.
func NewServeController(srv *server.Server, cfg *config.Config) *ServeController {
	return &ServeController{server: srv, cfg: cfg}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Serve the web dashboard",
		Long: `Serve the dependency dashboard over HTTP.

Sessions are kept in the store selected by session.store in the config
file: memory (default), redis or postgres. The server stops gracefully
on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags registers the serve-specific flags.
func (it *ServeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", "", "Listen address (overrides server.address)")
}

// Execute opens the session store and serves until interrupted.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		it.cfg.Server.Address = addr
	}

	store, closer, err := sessionstore.NewStore(ctx, it.cfg.Session)
	if err != nil {
		logger.Errorf("Failed to open session store: %v", err)
		return
	}
	defer func() {
		if closeErr := closer.Close(); closeErr != nil {
			logger.Warnf("Failed to close session store: %v", closeErr)
		}
	}()
	logger.Infof("Using %s session store", it.cfg.Session.Store)

	if serveErr := it.server.ListenAndServe(ctx, sessionstore.NewManager(store, it.cfg)); serveErr != nil {
		logger.Errorf("Dashboard stopped: %v", serveErr)
		return
	}
	logger.Info("Dashboard stopped")
}
