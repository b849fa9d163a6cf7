package keepalive

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/yanqian/panchang-api/internal/infra/config"
)

// Pinger keeps a free-tier deployment warm by periodically requesting its own
// health endpoint. Failures are logged and otherwise ignored.
type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client
	logger   *slog.Logger
	enabled  bool
}

// New builds the pinger from configuration. A disabled pinger is returned when
// keep-alive is off so callers can start it unconditionally.
func New(cfg *config.Config, logger *slog.Logger) *Pinger {
	return &Pinger{
		url:      strings.TrimRight(cfg.KeepAlive.ExternalURL, "/") + "/health",
		interval: cfg.KeepAlive.Interval,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger.With("component", "keepalive"),
		enabled:  cfg.KeepAlive.Enabled && cfg.KeepAlive.ExternalURL != "",
	}
}

// Run pings until the context is cancelled. It returns immediately when the
// pinger is disabled.
func (p *Pinger) Run(ctx context.Context) {
	if !p.enabled {
		return
	}
	p.logger.Info("keepalive started", "url", p.url, "interval", p.interval.String())
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.ping(ctx)
		}
	}
}

func (p *Pinger) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		p.logger.Warn("keepalive request build failed", "error", err)
		return
	}
	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("keepalive ping failed", "error", err)
		return
	}
	resp.Body.Close()
}
