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

	"orderdelivery/cmd"
	postgres_adapter "orderdelivery/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(appLogger)

	gormDB := openDatabase(config)
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error getting database handle: %v", err)
	}
	defer sqlDB.Close()

	app := cmd.NewCompositionRoot(config, gormDB, appLogger)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			appLogger.Error("Error closing event producer", "error", closeErr)
		}
	}()

	if jobManager := app.CreateJobManager(); jobManager != nil {
		if err = jobManager.StartAll(); err != nil {
			log.Fatalf("Error starting jobs: %v", err)
		}
		defer jobManager.StopAll()
	} else {
		appLogger.Warn("KAFKA_HOST is not set; outbox relay disabled")
	}

	startWebServer(&app, config.HTTPPort, appLogger)
}

func openDatabase(config cmd.Config) *gorm.DB {
	dsn, err := config.DSN()
	if err != nil {
		log.Fatalf("Error building database DSN: %v", err)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = postgres_adapter.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string, appLogger *slog.Logger) {
	e, err := app.CreateHTTPRouter()
	if err != nil {
		log.Fatalf("Error creating HTTP router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", startErr)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Error shutting down HTTP server", "error", err)
	}
}
