package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "shelldon/docs"
	"shelldon/internal/handlers"
	"shelldon/internal/ingest"
	"shelldon/internal/logger"
	"shelldon/internal/repository"
	"shelldon/internal/server"
	"shelldon/internal/service"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long:  `Loads the fixture once, then serves the page, JSON API, SVG charts and live websocket until interrupted.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// @title        Shelldon Live API
// @version      1.0
// @description  Habitat dashboard, sensor history and care log for the Shelldon live stream.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func runServe(cmd *cobra.Command, args []string) error {
	// context for background goroutines
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	log := a.log

	// wire dependencies
	repos := repository.NewRepository(a.db)
	services := service.NewService(repos, service.Options{
		Snapshot: a.snap,
		Config:   a.cfg,
		Log:      log,
	})
	apiHandler := handlers.NewHandler(services, log, handlers.WithRateLimit(a.cfg.RateLimit))

	go services.Warmer.Run(ctx, a.cfg.Charts.CacheTTL/2)

	if a.cfg.MQTT.Enabled {
		sub := ingest.NewSubscriber(a.cfg.MQTT, services.Readings, log)
		go func() {
			if err := sub.Run(ctx); err != nil {
				log.Errorw("mqtt_ingest_failed", "err", err, "broker", a.cfg.MQTT.Broker)
			}
		}()
	}

	srv := &server.Server{}
	runHTTPServer(srv, a.cfg.Port, apiHandler, log)

	waitForShutdown(cancel, srv, log)
	return nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
