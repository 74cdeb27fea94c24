package statcache_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*miniredis.Miniredis, statcache.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, cache.NewRedisCacheServiceFromClient(client)
}

func newTestAccessor(t *testing.T) (*miniredis.Miniredis, *statcache.Accessor, *statcache.Versions) {
	t.Helper()
	mr, store := newTestStore(t)
	versions := statcache.NewVersions(store)
	return mr, statcache.NewAccessor(store, versions, nil), versions
}

// brokenStore fails every operation; the accessor must treat it as an
// always-empty cache.
type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("connection refused")
}

func (brokenStore) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return errors.New("connection refused")
}

func (brokenStore) Incr(ctx context.Context, key string) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestKeyEmbedsCurrentFillVersion(t *testing.T) {
	ctx := context.Background()
	mr, accessor, _ := newTestAccessor(t)

	values := url.Values{}
	values.Set("page", "2")
	values.Set("server", "DE1")
	params := statcache.Params("/players", values)

	// Unset namespace reads as version 1.
	assert.Equal(t, "players:1:/players?page=2&server=DE1", accessor.Key(ctx, "players", params))

	require.NoError(t, mr.Set(statcache.VersionKey("players"), "3"))
	assert.Equal(t, "players:3:/players?page=2&server=DE1", accessor.Key(ctx, "players", params))
}

func TestParamsWithoutQuery(t *testing.T) {
	assert.Equal(t, "/servers", statcache.Params("/servers", url.Values{}))
}

func TestGetOrComputeMissThenHit(t *testing.T) {
	ctx := context.Background()
	_, accessor, _ := newTestAccessor(t)

	type payload struct {
		Name string `json:"name"`
	}

	calls := 0
	producer := func() (any, error) {
		calls++
		return payload{Name: "alice"}, nil
	}

	var first payload
	require.NoError(t, accessor.GetOrCompute(ctx, "players", "/players/DE1/7", 0, &first, producer))
	assert.Equal(t, "alice", first.Name)
	assert.Equal(t, 1, calls)

	var second payload
	require.NoError(t, accessor.GetOrCompute(ctx, "players", "/players/DE1/7", 0, &second, producer))
	assert.Equal(t, "alice", second.Name)
	assert.Equal(t, 1, calls, "hit must not run the producer")
}

func TestGetOrComputeProducerErrorWritesNothing(t *testing.T) {
	ctx := context.Background()
	mr, accessor, _ := newTestAccessor(t)

	var dest struct{}
	err := accessor.GetOrCompute(ctx, "players", "/players/DE1/7", 0, &dest, func() (any, error) {
		return nil, errors.New("db down")
	})
	require.Error(t, err)
	assert.Empty(t, mr.Keys(), "a failed producer must not leave a cache entry")
}

func TestGetOrComputeMalformedEntryFallsThrough(t *testing.T) {
	ctx := context.Background()
	mr, accessor, _ := newTestAccessor(t)

	type payload struct {
		Name string `json:"name"`
	}
	require.NoError(t, mr.Set("players:1:/players/DE1/7", "{not json"))

	calls := 0
	var dest payload
	require.NoError(t, accessor.GetOrCompute(ctx, "players", "/players/DE1/7", 0, &dest, func() (any, error) {
		calls++
		return payload{Name: "bob"}, nil
	}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "bob", dest.Name)
}

func TestWriteAppliesDefaultTTL(t *testing.T) {
	ctx := context.Background()
	mr, accessor, _ := newTestAccessor(t)

	accessor.Write(ctx, "players:1:/x", "payload", 0, true)
	assert.Equal(t, statcache.DefaultTTL, mr.TTL("players:1:/x"))
}

func TestEntriesExpireOnTheirTTL(t *testing.T) {
	ctx := context.Background()
	mr, accessor, _ := newTestAccessor(t)

	_, err := accessor.GetOrComputeRaw(ctx, "live", "/castles/9?server=DE1", 60*time.Second, func() (string, error) {
		return "castle-payload", nil
	})
	require.NoError(t, err)

	mr.FastForward(61 * time.Second)

	calls := 0
	payload, err := accessor.GetOrComputeRaw(ctx, "live", "/castles/9?server=DE1", 60*time.Second, func() (string, error) {
		calls++
		return "fresh-payload", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh-payload", payload)
	assert.Equal(t, 1, calls)
}

func TestBumpOrphansOldKeys(t *testing.T) {
	ctx := context.Background()
	_, accessor, versions := newTestAccessor(t)

	_, err := accessor.GetOrComputeRaw(ctx, "players", "/players?server=DE1", 0, func() (string, error) {
		return "stale", nil
	})
	require.NoError(t, err)

	_, err = versions.Bump(ctx, "players")
	require.NoError(t, err)

	payload, err := accessor.GetOrComputeRaw(ctx, "players", "/players?server=DE1", 0, func() (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", payload, "bump must orphan the old key without deleting it")
}

func TestBrokenStoreDegradesToMiss(t *testing.T) {
	ctx := context.Background()
	versions := statcache.NewVersions(brokenStore{})
	accessor := statcache.NewAccessor(brokenStore{}, versions, nil)

	calls := 0
	payload, err := accessor.GetOrComputeRaw(ctx, "live", "/castles/1", 0, func() (string, error) {
		calls++
		return "computed", nil
	})
	require.NoError(t, err, "store failures must never surface to the caller")
	assert.Equal(t, "computed", payload)
	assert.Equal(t, 1, calls)
}

func TestReadMissingKey(t *testing.T) {
	ctx := context.Background()
	_, accessor, _ := newTestAccessor(t)

	_, ok := accessor.Read(ctx, "players:1:/nope")
	assert.False(t, ok)
}
