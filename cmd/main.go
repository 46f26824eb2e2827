package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exercise_tracker/internal/config"
	"exercise_tracker/internal/handlers"
	"exercise_tracker/internal/logger"
	"exercise_tracker/internal/repository"
	"exercise_tracker/internal/repository/db"
	"exercise_tracker/internal/server"
	"exercise_tracker/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load configs/config.yml, .env and environment
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer func() { _ = log.Sync() }()

	// open store
	repos, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatalw("failed to open store", "driver", cfg.Store.Driver, "err", err)
	}
	defer closeStore()

	// wire dependencies
	services := service.NewService(repos)
	apiHandler := handlers.NewHandler(services, log,
		handlers.WithLegacySoftErrors(cfg.LegacySoftErrors),
		handlers.WithCORSOrigins(cfg.CORSOrigins),
	)

	// start HTTP server
	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// openStore connects the configured backend and returns a cleanup func.
func openStore(cfg *config.Config, log *logger.Logger) (*repository.Repository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		ctx := context.Background()
		client, mdb, err := db.ConnectMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("connected to mongo", "database", cfg.Mongo.Database)
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.Errorw("failed to disconnect mongo", "err", err)
			}
		}
		return repository.NewMongoRepository(mdb), closeFn, nil

	case config.DriverSQLite:
		conn, err := db.InitDB(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("opened sqlite", "path", cfg.SQLite.Path)
		closeFn := func() {
			if err := conn.Close(); err != nil {
				log.Errorw("failed to close sqlite", "err", err)
			}
		}
		return repository.NewSQLiteRepository(conn), closeFn, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
