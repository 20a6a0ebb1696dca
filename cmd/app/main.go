package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orders/cmd"
	"orders/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(slogger)

	gormDB, err := openDB(configs)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if configs.DBAutoMigrate {
		if err = postgres.Migrate(gormDB); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	app := cmd.NewCompositionRoot(configs, gormDB, slogger)

	publisher, err := app.CreateEventPublisher()
	if err != nil {
		log.Fatalf("Failed to connect %s broker: %v", configs.Broker, err)
	}

	jobManager := app.CreateJobManager(publisher)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	router, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		slogger.Info("HTTP server started", "addr", addr)
		if err := router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		slogger.Error("HTTP shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if err := publisher.Close(); err != nil {
		slogger.Error("Failed to close publisher", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func openDB(configs cmd.Config) (*gorm.DB, error) {
	if configs.DBDriver == cmd.DBDriverSQLite {
		return postgres.OpenSQLite(configs.DBDsn, logger.Warn)
	}
	return postgres.OpenPostgres(configs.PostgresDSN(), logger.Warn)
}
