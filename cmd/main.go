package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/satriahrh/solace/server/adapters/llm"
	"github.com/satriahrh/solace/server/domain/repositories"
	"github.com/satriahrh/solace/server/internal/api"
	"github.com/satriahrh/solace/server/internal/config"
	"github.com/satriahrh/solace/server/usecase"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (default $SOLACE_CONFIG)")
	host := flag.String("host", "", "listen host (overrides HOST)")
	port := flag.String("port", "", "listen port (overrides PORT)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	// Initialize logger
	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// A missing key leaves the model nil; the server still starts and every
	// model endpoint answers 500.
	model := newJournalModel(cfg.Gemini, logger)

	journalService := usecase.NewJournalService(model, logger)

	e := echo.New()
	e.HideBanner = true
	api.RegisterMiddleware(e, cfg.Server.BodyLimit, logger)
	api.InitRoutes(e, journalService, logger)

	// Graceful shutdown
	go func() {
		if err := e.Start(cfg.Address()); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Solace server started",
		zap.String("address", cfg.Address()),
		zap.Bool("gemini_available", journalService.Available()))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zapConfig := zap.NewProductionConfig()
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	return zapConfig.Build()
}

func newJournalModel(cfg config.GeminiConfig, logger *zap.Logger) repositories.JournalModel {
	if cfg.Mock {
		logger.Warn("Using mock Gemini client, responses are canned")
		return llm.NewMockGeminiClient()
	}

	client, err := llm.NewGeminiClient(context.Background(), llm.GeminiConfig{
		APIKey:         cfg.APIKey,
		Model:          cfg.Model,
		TimeoutSeconds: cfg.TimeoutSeconds,
		Temperature:    cfg.Temperature,
	}, logger)
	if err != nil {
		logger.Warn("Failed to initialize Gemini service", zap.Error(err))
		return nil
	}

	logger.Info("Gemini service initialized successfully", zap.String("model", cfg.Model))
	return client
}
