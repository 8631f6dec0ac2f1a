package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/bfhl/internal/dto"
	"github.com/DjordjeVuckovic/bfhl/internal/metrics"
)

type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeLocal:
		return ModeLocal, nil
	case ModeRemote:
		return ModeRemote, nil
	default:
		return "", fmt.Errorf("invalid classifier mode %q, expected one of %v", s, []Mode{ModeLocal, ModeRemote})
	}
}

// Classifier produces a full /bfhl response for a token list.
type Classifier interface {
	Classify(ctx context.Context, tokens []string) (*dto.ClassifyResponse, error)
}

// Observed decorates a Classifier with metrics.
type Observed struct {
	next    Classifier
	backend Mode
	metrics *metrics.Metrics
}

func NewObserved(next Classifier, backend Mode, m *metrics.Metrics) *Observed {
	return &Observed{next: next, backend: backend, metrics: m}
}

func (o *Observed) Classify(ctx context.Context, tokens []string) (*dto.ClassifyResponse, error) {
	start := time.Now()
	resp, err := o.next.Classify(ctx, tokens)
	o.metrics.ObserveClassification(string(o.backend), time.Since(start), err)
	if err == nil {
		o.metrics.ObserveTokens(len(resp.Numbers), len(resp.Alphabets))
	}
	return resp, err
}
