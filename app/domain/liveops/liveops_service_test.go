package liveops_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gametrack.gg/stats-api/app/domain/liveops"
	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"gametrack.gg/stats-api/app/utils/httpclients/gamews"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCastleSource struct {
	detail *gamews.CastleDetail
	err    error
	calls  int
}

func (f *fakeCastleSource) GetCastle(ctx context.Context, server string, castleID int64) (*gamews.CastleDetail, error) {
	f.calls++
	return f.detail, f.err
}

func newLiveopsService(t *testing.T, source liveops.CastleSource) (*miniredis.Miniredis, *liveops.Service) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := cache.NewRedisCacheServiceFromClient(client)
	return mr, liveops.NewService(source, statcache.NewAccessor(store, statcache.NewVersions(store), nil))
}

func TestCachedCastleMissThenHit(t *testing.T) {
	ctx := context.Background()
	source := &fakeCastleSource{detail: &gamews.CastleDetail{CastleID: 77, OwnerName: "alice"}}
	_, svc := newLiveopsService(t, source)

	_, ok := svc.CachedCastle(ctx, "DE1", 77)
	assert.False(t, ok)

	payload, err := svc.FetchCastle(ctx, "DE1", 77)
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)

	cached, ok := svc.CachedCastle(ctx, "DE1", 77)
	require.True(t, ok)
	assert.Equal(t, payload, cached)

	var detail gamews.CastleDetail
	require.NoError(t, json.Unmarshal([]byte(cached), &detail))
	assert.Equal(t, "alice", detail.OwnerName)
}

func TestFetchCastleUpstreamError(t *testing.T) {
	ctx := context.Background()
	source := &fakeCastleSource{err: errors.New("session busy")}
	mr, svc := newLiveopsService(t, source)

	_, err := svc.FetchCastle(ctx, "DE1", 77)
	require.Error(t, err)
	assert.Empty(t, mr.Keys(), "a failed fetch must not leave a cache entry")
}

func TestLiveEntriesExpireFast(t *testing.T) {
	ctx := context.Background()
	source := &fakeCastleSource{detail: &gamews.CastleDetail{CastleID: 77}}
	mr, svc := newLiveopsService(t, source)

	_, err := svc.FetchCastle(ctx, "DE1", 77)
	require.NoError(t, err)

	mr.FastForward(61 * time.Second)

	_, ok := svc.CachedCastle(ctx, "DE1", 77)
	assert.False(t, ok, "live payloads must not outlive their short TTL")
}
