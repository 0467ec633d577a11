package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jibekjoly/cmd"
	httpadapter "jibekjoly/internal/adapters/in/http"
	"jibekjoly/internal/adapters/out/postgres"
	"jibekjoly/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(configs.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()

	if err = run(configs, zapLogger); err != nil {
		zapLogger.Fatal("service stopped with error", zap.Error(err))
	}
}

func run(configs cmd.Config, zapLogger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, gormDB, zapLogger)

	jobManager, release := app.CreateJobs()
	defer release()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := newWebServer(ctx, &app, configs, zapLogger)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		zapLogger.Info("http server started", zap.String("port", configs.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err = <-serverErr:
		return err
	case <-ctx.Done():
	}

	zapLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, zapLogger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(echoLogLevel(configs.LogLevel))
	e.Use(middleware.Recover())
	e.Use(httpadapter.RequestLogger(zapLogger))

	doc, err := httpadapter.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	server := httpadapter.NewServer(app.CreateHandlers(), zapLogger)
	auth := httpadapter.Authenticate(httpadapter.NewTokenAuth(configs.JWTSecret), app.CreateGetActorQueryHandler(), zapLogger)
	if err = httpadapter.RegisterRoutes(e, server, auth, doc); err != nil {
		return nil, err
	}
	return e, nil
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	}
	return log.INFO
}
