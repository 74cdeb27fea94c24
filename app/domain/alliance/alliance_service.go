package alliance

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

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	GameID      int64  `json:"game_id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
	Might       int64  `json:"might"`
	Loot        int64  `json:"loot"`
}

type LeaderboardPage struct {
	Server   string             `json:"server"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Total    int64              `json:"total"`
	Results  []LeaderboardEntry `json:"results"`
}

type Service struct {
	repo     AllianceRepository
	accessor *statcache.Accessor
}

func NewService(repo AllianceRepository, accessor *statcache.Accessor) *Service {
	return &Service{
		repo:     repo,
		accessor: accessor,
	}
}

func (s *Service) ListAlliances(ctx context.Context, server string, pagination *query.Pagination, search string) (*LeaderboardPage, *common.Error) {
	values := url.Values{}
	values.Set("page", strconv.Itoa(pagination.Page))
	values.Set("server", server)
	if pagination.PageSize != query.DefaultPageSize {
		values.Set("page_size", strconv.Itoa(pagination.PageSize))
	}
	if search != "" {
		values.Set("search", search)
	}
	params := statcache.Params("/alliances", values)

	var page LeaderboardPage
	err := s.accessor.GetOrCompute(ctx, cache.NamespaceAlliances, params, leaderboardTTL, &page, func() (any, error) {
		alliances, total, err := s.repo.FindByFilter(ctx, AllianceFilter{ServerCode: server, Search: search}, pagination)
		if err != nil {
			return nil, err
		}
		result := LeaderboardPage{
			Server:   server,
			Page:     pagination.Page,
			PageSize: pagination.PageSize,
			Total:    total,
			Results:  make([]LeaderboardEntry, 0, len(alliances)),
		}
		for i, a := range alliances {
			result.Results = append(result.Results, LeaderboardEntry{
				Rank:        pagination.Offset() + i + 1,
				GameID:      a.GameID,
				Name:        a.Name,
				MemberCount: a.MemberCount,
				Might:       a.Might,
				Loot:        a.Loot,
			})
		}
		return result, nil
	})
	if err != nil {
		return nil, common.NewError("c4d0f2a6-1b3e-4c7d-8f9a-d77e32cc4001", err.Error())
	}
	return &page, nil
}

func (s *Service) GetAlliance(ctx context.Context, server string, gameID int64) (*LeaderboardEntry, *common.Error) {
	params := statcache.Params(fmt.Sprintf("/alliances/%s/%d", server, gameID), url.Values{})

	var entry LeaderboardEntry
	err := s.accessor.GetOrCompute(ctx, cache.NamespaceAlliances, params, leaderboardTTL, &entry, func() (any, error) {
		a, err := s.repo.FindByGameID(ctx, server, gameID)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, fmt.Errorf("alliance %d not tracked on %s", gameID, server)
		}
		return LeaderboardEntry{
			GameID:      a.GameID,
			Name:        a.Name,
			MemberCount: a.MemberCount,
			Might:       a.Might,
			Loot:        a.Loot,
		}, nil
	})
	if err != nil {
		return nil, common.NewError("e9b1a5c3-7f4d-4e2a-9c6b-d77e32cc4002", err.Error())
	}
	return &entry, nil
}
