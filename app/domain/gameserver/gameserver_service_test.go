package gameserver_test

import (
	"context"
	"testing"

	"gametrack.gg/stats-api/app/domain/gameserver"
	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServerRepo struct {
	servers []*gameserver.GameServer
	calls   int
}

func (f *fakeServerRepo) FindByFilter(ctx context.Context, filter gameserver.GameServerFilter) ([]*gameserver.GameServer, error) {
	f.calls++
	out := make([]*gameserver.GameServer, 0, len(f.servers))
	for _, s := range f.servers {
		if filter.Enabled != nil && s.Enabled != *filter.Enabled {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServerRepo) FindByCode(ctx context.Context, code string) (*gameserver.GameServer, error) {
	for _, s := range f.servers {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, nil
}

func newServerService(t *testing.T, repo gameserver.GameServerRepository) *gameserver.Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := cache.NewRedisCacheServiceFromClient(client)
	return gameserver.NewService(repo, statcache.NewAccessor(store, statcache.NewVersions(store), nil))
}

func TestListServersOnlyEnabled(t *testing.T) {
	ctx := context.Background()
	repo := &fakeServerRepo{servers: []*gameserver.GameServer{
		{Code: "DE1", Region: "eu", WorldName: "Drachenfels", Enabled: true},
		{Code: "US3", Region: "us", WorldName: "Ironhold", Enabled: false},
	}}
	svc := newServerService(t, repo)

	servers, err := svc.ListServers(ctx)
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, "DE1", servers[0].Code)

	_, err = svc.ListServers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "the list must be served from the cache")
}

func TestResolveUnknownServer(t *testing.T) {
	ctx := context.Background()
	svc := newServerService(t, &fakeServerRepo{})

	_, err := svc.Resolve(ctx, "XX9")
	assert.NotNil(t, err)
}

func TestResolveDisabledServer(t *testing.T) {
	ctx := context.Background()
	svc := newServerService(t, &fakeServerRepo{servers: []*gameserver.GameServer{
		{Code: "US3", Enabled: false},
	}})

	_, err := svc.Resolve(ctx, "US3")
	assert.NotNil(t, err)
}

func TestResolveEnabledServer(t *testing.T) {
	ctx := context.Background()
	svc := newServerService(t, &fakeServerRepo{servers: []*gameserver.GameServer{
		{Code: "DE1", Region: "eu", Enabled: true},
	}})

	server, err := svc.Resolve(ctx, "DE1")
	require.Nil(t, err)
	assert.Equal(t, "eu", server.Region)
}
