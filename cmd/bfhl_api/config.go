package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/bfhl/internal/identity"
	"github.com/DjordjeVuckovic/bfhl/internal/service"
	"github.com/DjordjeVuckovic/bfhl/pkg/config/env"
)

const defaultRemoteTimeout = 30 * time.Second

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type BfhlConfig struct {
	LogLevel      slog.Level
	ServiceConfig service.Config
}

func (as *AppConfig) LoadDotEnv() {
	if err := env.LoadDotEnv(as.ENV, "cmd/bfhl_api/.env"); err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}
}

func (as *AppConfig) Load() (*BfhlConfig, error) {
	mode, err := service.ParseMode(env.String("CLASSIFIER_MODE", string(service.ModeLocal)))
	if err != nil {
		slog.Error("Invalid CLASSIFIER_MODE environment variable value", "error", err)
		return nil, err
	}

	id, err := identity.Resolve(os.Getenv("IDENTITY_FILE"))
	if err != nil {
		slog.Error("Failed to resolve identity", "error", err)
		return nil, err
	}

	return &BfhlConfig{
		LogLevel: env.LogLevel("LOG_LEVEL"),
		ServiceConfig: service.Config{
			Mode:          mode,
			RemoteBaseURL: os.Getenv("REMOTE_BASE_URL"),
			RemoteTimeout: env.Duration("REMOTE_TIMEOUT", defaultRemoteTimeout),
			Identity:      *id,
		},
	}, nil
}
