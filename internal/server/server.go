package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bmefuto/portal/internal/app/routes"
	"github.com/bmefuto/portal/internal/bootstrap"
)

// Server holds the state for the HTTP server.
type Server struct {
	app    *bootstrap.App
	router *gin.Engine
	http   *http.Server
}

// New assembles the application and builds the HTTP router.
func New(configPath, migrationsDir string) (*Server, error) {
	app, err := bootstrap.Initialize(configPath, migrationsDir)
	if err != nil {
		return nil, err
	}

	if app.Config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	setupStaticFileServing(router, app.Config.Server.StoragePath)
	routes.SetupRoutes(router, app.Controllers, app.AuthMW)

	return &Server{app: app, router: router}, nil
}

// setupStaticFileServing serves uploaded files from the storage directory.
func setupStaticFileServing(router *gin.Engine, storagePath string) {
	if _, err := os.Stat(storagePath); os.IsNotExist(err) {
		if err := os.MkdirAll(storagePath, os.ModePerm); err != nil {
			log.Error().Err(err).Str("path", storagePath).Msg("Failed to create uploads directory")
			return
		}
	}

	router.Static("/uploads", storagePath)
	log.Info().Str("path", storagePath).Msg("Static file serving configured for uploads directory")
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.app.Config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		log.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the HTTP server and closes application resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = errors.New("server shutdown completed with errors")
		}
	}

	s.app.Close()
	log.Info().Msg("Server shutdown complete")
	return shutdownErr
}
