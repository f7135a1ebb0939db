package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nst-sdc/nst-events-sub001/internal/api"
	"github.com/nst-sdc/nst-events-sub001/internal/config"
	"github.com/nst-sdc/nst-events-sub001/internal/db"
	"github.com/nst-sdc/nst-events-sub001/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	postgresDB, err := openDB(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	s := api.NewServer(conf, postgresDB)
	go s.Hub.Run()

	srv := &http.Server{
		Addr:    ":" + s.Config.API.Port,
		Handler: s.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err = <-serveErr:
		return fmt.Errorf("failed to start the server -> %w", err)
	case sig := <-quit:
		zap.L().Info("shutting down", zap.String("signal", sig.String()))
	}

	// In-flight requests get shutdownTimeout to finish; websocket
	// subscribers are dropped with the listener.
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

func openDB(conf *config.AppConfig) (*gorm.DB, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return db.OpenPostgresWithURL(dbURL)
	}

	return db.OpenPostgres(conf.Postgres)
}
