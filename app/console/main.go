package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"storage-equipment/internal/console"
	"storage-equipment/internal/listeners"
	"storage-equipment/pkg/apiclient"
	"storage-equipment/pkg/config"
	"storage-equipment/pkg/eventbus"
	applogger "storage-equipment/pkg/logger"
	appmiddleware "storage-equipment/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("конфигурация: %v", err)
	}

	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File).Named("console")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Диагностика представлений уходит в лог через шину
	bus := eventbus.New(logger)
	listeners.NewDiagnosticsListener(logger).Register(bus)

	client := apiclient.New(apiclient.Config{BaseURL: cfg.Console.APIBaseURL}, logger)

	handler, err := console.New(client, client, cfg.Console.BasePath, bus, logger)
	if err != nil {
		logger.Fatal("не удалось подготовить шаблоны консоли", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			return err
		},
	}))
	e.Use(appmiddleware.RequestLogger(logger))
	handler.Register(e)

	go func() {
		logger.Info("🚀 Консоль запущена",
			zap.String("port", cfg.Console.Port),
			zap.String("api", client.BaseURL()),
			zap.String("basePath", cfg.Console.BasePath),
		)
		if err := e.Start(":" + cfg.Console.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска консоли", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("консоль остановлена с ошибкой", zap.Error(err))
	}
	bus.Wait()
}
