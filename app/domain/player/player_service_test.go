package player_test

import (
	"context"
	"testing"

	"gametrack.gg/stats-api/app/domain/player"
	"gametrack.gg/stats-api/app/domain/query"
	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayerRepo struct {
	players []*player.Player
	calls   int
}

func (f *fakePlayerRepo) FindByFilter(ctx context.Context, filter player.PlayerFilter, pagination *query.Pagination) ([]*player.Player, int64, error) {
	f.calls++
	return f.players, int64(len(f.players)), nil
}

func (f *fakePlayerRepo) FindByGameID(ctx context.Context, serverCode string, gameID int64) (*player.Player, error) {
	f.calls++
	for _, p := range f.players {
		if p.GameID == gameID {
			return p, nil
		}
	}
	return nil, nil
}

func newPlayerService(t *testing.T, repo player.PlayerRepository) (*miniredis.Miniredis, *player.Service) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := cache.NewRedisCacheServiceFromClient(client)
	accessor := statcache.NewAccessor(store, statcache.NewVersions(store), nil)
	return mr, player.NewService(repo, accessor)
}

func TestListPlayersCachesThePage(t *testing.T) {
	ctx := context.Background()
	repo := &fakePlayerRepo{players: []*player.Player{
		{GameID: 7, Name: "alice", Might: 9000, Level: 40},
		{GameID: 8, Name: "bob", Might: 8000, Level: 38},
	}}
	mr, svc := newPlayerService(t, repo)

	pagination := &query.Pagination{Page: 2, PageSize: query.DefaultPageSize, Order: "desc"}

	page, err := svc.ListPlayers(ctx, "DE1", pagination, "")
	require.Nil(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, 51, page.Results[0].Rank, "rank continues across pages")
	assert.Equal(t, 1, repo.calls)

	// Default page size stays out of the key so the common case stays short.
	assert.True(t, mr.Exists("players:1:/players?page=2&server=DE1"), "keys: %v", mr.Keys())

	_, err = svc.ListPlayers(ctx, "DE1", pagination, "")
	require.Nil(t, err)
	assert.Equal(t, 1, repo.calls, "second read must be served from the cache")
}

func TestListPlayersKeyCarriesSearchAndPageSize(t *testing.T) {
	ctx := context.Background()
	mr, svc := newPlayerService(t, &fakePlayerRepo{})

	pagination := &query.Pagination{Page: 1, PageSize: 20, Order: "desc"}
	_, err := svc.ListPlayers(ctx, "DE1", pagination, "dragon")
	require.Nil(t, err)

	assert.True(t, mr.Exists("players:1:/players?page=1&page_size=20&search=dragon&server=DE1"), "keys: %v", mr.Keys())
}

func TestGetPlayerUntracked(t *testing.T) {
	ctx := context.Background()
	_, svc := newPlayerService(t, &fakePlayerRepo{})

	_, err := svc.GetPlayer(ctx, "DE1", 999)
	assert.NotNil(t, err)
}

func TestGetPlayerCaches(t *testing.T) {
	ctx := context.Background()
	repo := &fakePlayerRepo{players: []*player.Player{{GameID: 7, Name: "alice", Might: 9000}}}
	_, svc := newPlayerService(t, repo)

	entry, err := svc.GetPlayer(ctx, "DE1", 7)
	require.Nil(t, err)
	assert.Equal(t, "alice", entry.Name)

	_, err = svc.GetPlayer(ctx, "DE1", 7)
	require.Nil(t, err)
	assert.Equal(t, 1, repo.calls)
}
