package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHealthChecker is healthy while the wrapped dependency answers Ping.
type PingHealthChecker struct {
	target Pinger
}

func NewPingHealthChecker(target Pinger) *PingHealthChecker {
	return &PingHealthChecker{target: target}
}

func (hc *PingHealthChecker) Healthy(ctx context.Context) bool {
	if hc.target == nil {
		return false
	}
	return hc.target.Ping(ctx) == nil
}
