package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/bfhl/internal/identity"
	"github.com/DjordjeVuckovic/bfhl/internal/metrics"
	"github.com/DjordjeVuckovic/bfhl/internal/remote"
	pkgserver "github.com/DjordjeVuckovic/bfhl/pkg/server"
)

type Config struct {
	Mode          Mode
	RemoteBaseURL string
	RemoteTimeout time.Duration
	Identity      identity.Identity
}

// New builds the classifier selected by cfg.Mode, wrapped with metrics.
func New(cfg Config, m *metrics.Metrics) (Classifier, error) {
	switch cfg.Mode {
	case ModeLocal, "":
		slog.Info("Using local classifier")
		return NewObserved(NewLocal(cfg.Identity), ModeLocal, m), nil

	case ModeRemote:
		client, err := remote.NewClient(cfg.RemoteBaseURL, remote.WithTimeout(cfg.RemoteTimeout))
		if err != nil {
			return nil, fmt.Errorf("failed to create remote classifier client: %w", err)
		}
		slog.Info("Using remote classifier", "baseUrl", cfg.RemoteBaseURL)
		return NewObserved(client, ModeRemote, m), nil

	default:
		return nil, fmt.Errorf("unsupported classifier mode: %s", cfg.Mode)
	}
}

// HealthChecker reports the health of the backend behind c. Backends that can
// be pinged are probed; the local classifier is always healthy.
func HealthChecker(c Classifier) pkgserver.HealthChecker {
	if o, ok := c.(*Observed); ok {
		c = o.next
	}
	if p, ok := c.(pkgserver.Pinger); ok {
		return pkgserver.NewPingHealthChecker(p)
	}
	return pkgserver.NewOkHealthChecker()
}
