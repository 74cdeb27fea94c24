package player

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"gametrack.gg/stats-api/app/domain/common"
	"gametrack.gg/stats-api/app/domain/query"
	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
)

const leaderboardTTL = 20 * time.Minute

// LeaderboardEntry is the public leaderboard row shape.
type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	GameID       int64  `json:"game_id"`
	Name         string `json:"name"`
	AllianceID   int64  `json:"alliance_id,omitempty"`
	AllianceName string `json:"alliance_name,omitempty"`
	Level        int    `json:"level"`
	Might        int64  `json:"might"`
	Loot         int64  `json:"loot"`
	Honor        int64  `json:"honor"`
}

// LeaderboardPage is one cached page of the might leaderboard.
type LeaderboardPage struct {
	Server   string             `json:"server"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Total    int64              `json:"total"`
	Results  []LeaderboardEntry `json:"results"`
}

type Service struct {
	repo     PlayerRepository
	accessor *statcache.Accessor
}

func NewService(repo PlayerRepository, accessor *statcache.Accessor) *Service {
	return &Service{
		repo:     repo,
		accessor: accessor,
	}
}

// ListPlayers serves one leaderboard page through the players namespace.
func (s *Service) ListPlayers(ctx context.Context, server string, pagination *query.Pagination, search string) (*LeaderboardPage, *common.Error) {
	values := url.Values{}
	values.Set("page", strconv.Itoa(pagination.Page))
	values.Set("server", server)
	if pagination.PageSize != query.DefaultPageSize {
		values.Set("page_size", strconv.Itoa(pagination.PageSize))
	}
	if search != "" {
		values.Set("search", search)
	}
	params := statcache.Params("/players", values)

	var page LeaderboardPage
	err := s.accessor.GetOrCompute(ctx, cache.NamespacePlayers, params, leaderboardTTL, &page, func() (any, error) {
		players, total, err := s.repo.FindByFilter(ctx, PlayerFilter{ServerCode: server, Search: search}, pagination)
		if err != nil {
			return nil, err
		}
		result := LeaderboardPage{
			Server:   server,
			Page:     pagination.Page,
			PageSize: pagination.PageSize,
			Total:    total,
			Results:  make([]LeaderboardEntry, 0, len(players)),
		}
		for i, p := range players {
			result.Results = append(result.Results, LeaderboardEntry{
				Rank:         pagination.Offset() + i + 1,
				GameID:       p.GameID,
				Name:         p.Name,
				AllianceID:   p.AllianceID,
				AllianceName: p.AllianceName,
				Level:        p.Level,
				Might:        p.Might,
				Loot:         p.Loot,
				Honor:        p.Honor,
			})
		}
		return result, nil
	})
	if err != nil {
		return nil, common.NewError("b2c8e1f4-3d5a-4b6c-9e7f-c66d21bb3001", err.Error())
	}
	return &page, nil
}

// GetPlayer serves one player's detail through the players namespace.
func (s *Service) GetPlayer(ctx context.Context, server string, gameID int64) (*LeaderboardEntry, *common.Error) {
	params := statcache.Params(fmt.Sprintf("/players/%s/%d", server, gameID), url.Values{})

	var entry LeaderboardEntry
	err := s.accessor.GetOrCompute(ctx, cache.NamespacePlayers, params, leaderboardTTL, &entry, func() (any, error) {
		p, err := s.repo.FindByGameID(ctx, server, gameID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("player %d not tracked on %s", gameID, server)
		}
		return LeaderboardEntry{
			GameID:       p.GameID,
			Name:         p.Name,
			AllianceID:   p.AllianceID,
			AllianceName: p.AllianceName,
			Level:        p.Level,
			Might:        p.Might,
			Loot:         p.Loot,
			Honor:        p.Honor,
		}, nil
	})
	if err != nil {
		return nil, common.NewError("f7a9d3c1-8e2b-4a5d-b6c8-c66d21bb3002", err.Error())
	}
	return &entry, nil
}
