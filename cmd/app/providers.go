package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/panchang-api/internal/domain/tithi"
	"github.com/yanqian/panchang-api/internal/infra/config"
	"github.com/yanqian/panchang-api/internal/infra/panchangcache"
)

// provideTithiStore selects the cache backend: Valkey when configured and
// reachable, process memory otherwise. The service works identically either
// way, the cache only trims repeat calculations.
func provideTithiStore(cfg *config.Config, logger *slog.Logger) tithi.Store {
	if !cfg.Cache.Enabled {
		return panchangcache.NewMemoryStore(cfg.Cache.TTL)
	}

	opt, err := buildValkeyOptions(cfg)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return panchangcache.NewMemoryStore(cfg.Cache.TTL)
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return panchangcache.NewMemoryStore(cfg.Cache.TTL)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		return panchangcache.NewMemoryStore(cfg.Cache.TTL)
	}
	logger.Info("valkey tithi cache enabled", "addr", cfg.Cache.Addr)
	return panchangcache.NewValkeyStore(client, "panchang", cfg.Cache.TTL, logger)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Cache.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Cache.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Cache.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
