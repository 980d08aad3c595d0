package controllers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/localguide/internal/domain/commands"
	"github.com/rios0rios0/localguide/internal/domain/entities"
	"github.com/rios0rios0/localguide/internal/infrastructure/server"
)

const (
	defaultAddr       = ":8501"
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// ServeController handles the "serve" subcommand.
type ServeController struct {
	command commands.Generate
}

// NewServeController creates a new ServeController.
func NewServeController(command commands.Generate) *ServeController {
	return &ServeController{command: command}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Serve the guide generator as a web page",
		Long: `Start an HTTP server with a single page where a GitHub repository URL
can be submitted. The generated guide is rendered on the page and can
be downloaded as {repo}_guide.md.`,
	}
}

// Execute blocks until the server stops or the process is interrupted.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) {
	addr, _ := cmd.Flags().GetString("addr")

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.NewServer(it.command, settings).Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warnf("Server shutdown: %v", shutdownErr)
		}
	}()

	logger.Infof("Serving guide generator on %s", addr)
	if serveErr := httpServer.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		logger.Errorf("Server failed: %v", serveErr)
	}
}

// AddFlags adds the serve-specific flags to the given Cobra command.
func (it *ServeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", defaultAddr, "Address to listen on")
}
