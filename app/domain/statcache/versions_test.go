package statcache_test

import (
	"context"
	"testing"

	"gametrack.gg/stats-api/app/domain/statcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentDefaultsToOne(t *testing.T) {
	ctx := context.Background()
	_, store := newTestStore(t)
	versions := statcache.NewVersions(store)

	assert.Equal(t, int64(1), versions.Current(ctx, "players"))
}

func TestCurrentDegradesOnGarbage(t *testing.T) {
	ctx := context.Background()
	mr, store := newTestStore(t)
	versions := statcache.NewVersions(store)

	require.NoError(t, mr.Set(statcache.VersionKey("players"), "not-a-number"))
	assert.Equal(t, int64(1), versions.Current(ctx, "players"))

	require.NoError(t, mr.Set(statcache.VersionKey("players"), "0"))
	assert.Equal(t, int64(1), versions.Current(ctx, "players"))
}

func TestCurrentDegradesOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	versions := statcache.NewVersions(brokenStore{})

	assert.Equal(t, int64(1), versions.Current(ctx, "players"))
}

func TestFirstBumpLandsOnTwo(t *testing.T) {
	ctx := context.Background()
	_, store := newTestStore(t)
	versions := statcache.NewVersions(store)

	version, err := versions.Bump(ctx, "players")
	require.NoError(t, err)
	assert.Equal(t, int64(2), version, "an unset namespace reads as 1, so the first bump must move past it")
	assert.Equal(t, int64(2), versions.Current(ctx, "players"))

	version, err = versions.Bump(ctx, "players")
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)
}

func TestBumpPropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()
	versions := statcache.NewVersions(brokenStore{})

	_, err := versions.Bump(ctx, "players")
	assert.Error(t, err)
}

func TestBumpsAreIndependentPerNamespace(t *testing.T) {
	ctx := context.Background()
	_, store := newTestStore(t)
	versions := statcache.NewVersions(store)

	_, err := versions.Bump(ctx, "players")
	require.NoError(t, err)

	assert.Equal(t, int64(2), versions.Current(ctx, "players"))
	assert.Equal(t, int64(1), versions.Current(ctx, "alliances"))
}
