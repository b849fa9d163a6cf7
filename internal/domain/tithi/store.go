package tithi

import "context"

// Store caches computed tithi payloads. Implementations are free to drop
// entries at any time; a miss only costs a recomputation.
type Store interface {
	Get(ctx context.Context, key string) (Response, bool)
	Set(ctx context.Context, key string, value Response)
}

// NopStore disables caching.
type NopStore struct{}

func (NopStore) Get(context.Context, string) (Response, bool) { return Response{}, false }
func (NopStore) Set(context.Context, string, Response)        {}

var _ Store = NopStore{}
