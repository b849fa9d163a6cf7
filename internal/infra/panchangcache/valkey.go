package panchangcache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/panchang-api/internal/domain/tithi"
)

// ValkeyStore caches tithi payloads in a Valkey-compatible database. Cache
// failures are logged and treated as misses; the calculation is always
// available as a fallback.
type ValkeyStore struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string, ttl time.Duration, logger *slog.Logger) *ValkeyStore {
	if prefix == "" {
		prefix = "panchang"
	}
	return &ValkeyStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger.With("component", "panchangcache.valkey"),
	}
}

// Get implements tithi.Store.
func (s *ValkeyStore) Get(ctx context.Context, key string) (tithi.Response, bool) {
	cmd := s.client.B().Get().Key(s.key(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			s.logger.Warn("cache read failed", "error", err)
		}
		return tithi.Response{}, false
	}
	var resp tithi.Response
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		s.logger.Warn("cache entry malformed", "error", err)
		return tithi.Response{}, false
	}
	return resp, true
}

// Set implements tithi.Store.
func (s *ValkeyStore) Set(ctx context.Context, key string, value tithi.Response) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cache encode failed", "error", err)
		return
	}
	builder := s.client.B().Set().Key(s.key(key)).Value(string(payload))
	var cmd valkey.Completed
	if s.ttl > 0 {
		ttl := s.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		s.logger.Warn("cache write failed", "error", err)
	}
}

func (s *ValkeyStore) key(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

var _ tithi.Store = (*ValkeyStore)(nil)
