package liveops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"gametrack.gg/stats-api/app/utils/httpclients/gamews"
)

// Live castle data goes stale within a minute.
const liveTTL = 60 * time.Second

// CastleSource is the slice of the game server client the service uses.
// Calls on it must only ever run inside admission queue jobs: the game
// session rejects concurrent requests.
type CastleSource interface {
	GetCastle(ctx context.Context, server string, castleID int64) (*gamews.CastleDetail, error)
}

type Service struct {
	source   CastleSource
	accessor *statcache.Accessor
}

func NewService(source CastleSource, accessor *statcache.Accessor) *Service {
	return &Service{
		source:   source,
		accessor: accessor,
	}
}

func castleParams(server string, castleID int64) string {
	values := url.Values{}
	values.Set("server", server)
	return statcache.Params(fmt.Sprintf("/castles/%d", castleID), values)
}

// CachedCastle tries the cache only; the route uses it to skip the
// admission queue entirely on a hit.
func (s *Service) CachedCastle(ctx context.Context, server string, castleID int64) (string, bool) {
	key := s.accessor.Key(ctx, cache.NamespaceLive, castleParams(server, castleID))
	return s.accessor.Read(ctx, key)
}

// FetchCastle produces the live castle payload and caches it. Runs inside
// an admission queue job.
func (s *Service) FetchCastle(ctx context.Context, server string, castleID int64) (string, error) {
	return s.accessor.GetOrComputeRaw(ctx, cache.NamespaceLive, castleParams(server, castleID), liveTTL, func() (string, error) {
		detail, err := s.source.GetCastle(ctx, server, castleID)
		if err != nil {
			return "", err
		}
		payload, err := json.Marshal(detail)
		if err != nil {
			return "", err
		}
		return string(payload), nil
	})
}
