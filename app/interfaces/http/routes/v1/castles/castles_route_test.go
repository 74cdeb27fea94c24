package castles_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gametrack.gg/stats-api/app/domain/admission"
	"gametrack.gg/stats-api/app/domain/gameserver"
	"gametrack.gg/stats-api/app/domain/liveops"
	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"gametrack.gg/stats-api/app/interfaces/http/routes/v1/castles"
	"gametrack.gg/stats-api/app/utils/httpclients/gamews"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubServerRepo struct{}

func (stubServerRepo) FindByFilter(ctx context.Context, filter gameserver.GameServerFilter) ([]*gameserver.GameServer, error) {
	return nil, nil
}

func (stubServerRepo) FindByCode(ctx context.Context, code string) (*gameserver.GameServer, error) {
	if code == "DE1" {
		return &gameserver.GameServer{Code: "DE1", Enabled: true}, nil
	}
	return nil, nil
}

type stubCastleSource struct {
	detail *gamews.CastleDetail
	err    error
	calls  int
}

func (s *stubCastleSource) GetCastle(ctx context.Context, server string, castleID int64) (*gamews.CastleDetail, error) {
	s.calls++
	return s.detail, s.err
}

func newRouter(t *testing.T, source liveops.CastleSource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := cache.NewRedisCacheServiceFromClient(client)
	accessor := statcache.NewAccessor(store, statcache.NewVersions(store), nil)

	route := castles.NewCastlesRoute(
		liveops.NewService(source, accessor),
		gameserver.NewService(stubServerRepo{}, accessor),
		admission.NewQueue(nil),
	)

	engine := gin.New()
	route.RegisterRouter(engine.Group("/v1"))
	return engine
}

func TestGetCastleThroughTheQueue(t *testing.T) {
	source := &stubCastleSource{detail: &gamews.CastleDetail{CastleID: 77, OwnerName: "alice"}}
	router := newRouter(t, source)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/castles/DE1/77", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var detail gamews.CastleDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "alice", detail.OwnerName)
	assert.Equal(t, 1, source.calls)

	// Second request is a cache hit and never reaches the game server.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/castles/DE1/77", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, source.calls)
}

func TestGetCastleUnknownServer(t *testing.T) {
	source := &stubCastleSource{}
	router := newRouter(t, source)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/castles/XX9/77", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, source.calls)
}

func TestGetCastleInvalidID(t *testing.T) {
	router := newRouter(t, &stubCastleSource{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/castles/DE1/notanumber", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCastleUpstreamFailureFinalizesWith500(t *testing.T) {
	source := &stubCastleSource{err: errors.New("session busy")}
	router := newRouter(t, source)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/v1/castles/DE1/77", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
