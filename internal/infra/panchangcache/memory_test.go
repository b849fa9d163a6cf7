package panchangcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/panchang-api/internal/domain/tithi"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	_, ok := store.Get(ctx, "missing")
	require.False(t, ok)

	want := tithi.Response{TithiNumber: 3, TithiName: "Tritiya (Shukla)"}
	store.Set(ctx, "key", want)

	got, ok := store.Get(ctx, "key")
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	current := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	ctx := context.Background()
	store.Set(ctx, "key", tithi.Response{TithiNumber: 5})

	_, ok := store.Get(ctx, "key")
	require.True(t, ok)

	current = current.Add(59 * time.Second)
	_, ok = store.Get(ctx, "key")
	require.True(t, ok)

	current = current.Add(2 * time.Second)
	_, ok = store.Get(ctx, "key")
	require.False(t, ok, "entry must expire after the TTL")

	// Expired entries are dropped, not resurrected.
	current = current.Add(-time.Hour)
	_, ok = store.Get(ctx, "key")
	require.False(t, ok)
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewMemoryStore(0)
	current := time.Date(2025, 11, 15, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	ctx := context.Background()
	store.Set(ctx, "key", tithi.Response{TithiNumber: 7})

	current = current.Add(1000 * time.Hour)
	_, ok := store.Get(ctx, "key")
	require.True(t, ok)
}
