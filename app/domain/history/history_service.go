package history

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"gametrack.gg/stats-api/app/domain/common"
	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"gametrack.gg/stats-api/app/utils/httpclients/olap"
)

// Daily aggregates only change once per nightly load, so they can sit in
// the cache for a day; the nightly fill-version bump retires them early
// when the load finishes.
const seriesTTL = 24 * time.Hour

const DefaultDays = 90
const MaxDays = 365

// OlapSource is the slice of the OLAP client the history service uses.
type OlapSource interface {
	PlayerDailySeries(ctx context.Context, server string, playerID int64, days int) ([]olap.DailyPoint, error)
	ServerDailySeries(ctx context.Context, server string, days int) ([]olap.ServerDailyPoint, error)
}

type PlayerSeries struct {
	Server   string            `json:"server"`
	PlayerID int64             `json:"player_id"`
	Days     int               `json:"days"`
	Points   []olap.DailyPoint `json:"points"`
}

type ServerSeries struct {
	Server string                  `json:"server"`
	Days   int                     `json:"days"`
	Points []olap.ServerDailyPoint `json:"points"`
}

type Service struct {
	source   OlapSource
	accessor *statcache.Accessor
}

func NewService(source OlapSource, accessor *statcache.Accessor) *Service {
	return &Service{
		source:   source,
		accessor: accessor,
	}
}

func (s *Service) PlayerHistory(ctx context.Context, server string, playerID int64, days int) (*PlayerSeries, *common.Error) {
	days = clampDays(days)
	values := url.Values{}
	values.Set("days", strconv.Itoa(days))
	params := statcache.Params(fmt.Sprintf("/history/players/%s/%d", server, playerID), values)

	var series PlayerSeries
	err := s.accessor.GetOrCompute(ctx, cache.NamespaceHistory, params, seriesTTL, &series, func() (any, error) {
		points, err := s.source.PlayerDailySeries(ctx, server, playerID, days)
		if err != nil {
			return nil, err
		}
		return PlayerSeries{
			Server:   server,
			PlayerID: playerID,
			Days:     days,
			Points:   points,
		}, nil
	})
	if err != nil {
		return nil, common.NewError("a1e7c3b9-5d2f-4a8c-b4e6-e88f43dd5001", err.Error())
	}
	return &series, nil
}

func (s *Service) ServerHistory(ctx context.Context, server string, days int) (*ServerSeries, *common.Error) {
	days = clampDays(days)
	values := url.Values{}
	values.Set("days", strconv.Itoa(days))
	params := statcache.Params(fmt.Sprintf("/history/servers/%s", server), values)

	var series ServerSeries
	err := s.accessor.GetOrCompute(ctx, cache.NamespaceHistory, params, seriesTTL, &series, func() (any, error) {
		points, err := s.source.ServerDailySeries(ctx, server, days)
		if err != nil {
			return nil, err
		}
		return ServerSeries{
			Server: server,
			Days:   days,
			Points: points,
		}, nil
	})
	if err != nil {
		return nil, common.NewError("b3f9d1a7-6e4c-4b2d-a8f0-e88f43dd5002", err.Error())
	}
	return &series, nil
}

func clampDays(days int) int {
	if days <= 0 {
		return DefaultDays
	}
	if days > MaxDays {
		return MaxDays
	}
	return days
}
