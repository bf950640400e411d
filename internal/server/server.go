// Package server runs the HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iug/student-portal/internal/config"
	"github.com/iug/student-portal/internal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and the resources it owns.
type Server struct {
	httpServer *http.Server
	database   *sql.DB
}

// New creates a server for the given router and database handle.
func New(cfg *config.Config, router *gin.Engine, database *sql.DB) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		database: database,
	}
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully and closes
// the database.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.httpServer.Addr).Msg("Server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		s.database.Close()
		return err
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced server shutdown")
	}

	if err := s.database.Close(); err != nil {
		logger.Error().Err(err).Msg("Error closing database")
	}

	logger.Info().Msg("Server exited")
	return nil
}
