// Package main BFHL API
// @title BFHL API
// @version 1.0
// @description Classifies mixed alphanumeric tokens into numbers, alphabets and the highest alphabet
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/bfhl/docs"
	"github.com/DjordjeVuckovic/bfhl/internal/api/router"
	"github.com/DjordjeVuckovic/bfhl/internal/api/server"
	"github.com/DjordjeVuckovic/bfhl/internal/metrics"
	"github.com/DjordjeVuckovic/bfhl/internal/service"
	"github.com/DjordjeVuckovic/bfhl/internal/view"
)

func main() {
	appSettings := NewAppConfig()
	appSettings.LoadDotEnv()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	classifier, err := service.New(cfg.ServiceConfig, metrics.Default())
	if err != nil {
		slog.Error("Failed to create classifier", "error", err)
		os.Exit(1)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, service.HealthChecker(classifier)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupRenderer(renderer).
		SetupHealthChecks(server.HealthPath).
		SetupMetrics("/metrics", nil).
		SetupOpenApi("/swagger/*")

	router.NewBfhlRouter(s.Echo, classifier).Bind()
	router.NewFormRouter(s.Echo, classifier).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
