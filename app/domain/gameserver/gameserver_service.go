package gameserver

import (
	"context"
	"net/url"
	"time"

	"gametrack.gg/stats-api/app/domain/common"
	"gametrack.gg/stats-api/app/domain/statcache"
	"gametrack.gg/stats-api/app/infrastructure/cache"
	"gametrack.gg/stats-api/app/utils/functional"
)

const listTTL = time.Hour

// ServerInfo is the public shape of a registry row; pool DSNs stay private.
type ServerInfo struct {
	Code      string `json:"code"`
	Region    string `json:"region"`
	WorldName string `json:"world_name"`
}

type Service struct {
	repo     GameServerRepository
	accessor *statcache.Accessor
}

func NewService(repo GameServerRepository, accessor *statcache.Accessor) *Service {
	return &Service{
		repo:     repo,
		accessor: accessor,
	}
}

// ListServers returns all enabled servers, cached under the servers
// namespace.
func (s *Service) ListServers(ctx context.Context) ([]ServerInfo, error) {
	enabled := true
	params := statcache.Params("/servers", url.Values{})

	var servers []ServerInfo
	err := s.accessor.GetOrCompute(ctx, cache.NamespaceServers, params, listTTL, &servers, func() (any, error) {
		rows, err := s.repo.FindByFilter(ctx, GameServerFilter{Enabled: &enabled})
		if err != nil {
			return nil, err
		}
		return functional.Map(rows, func(row *GameServer) ServerInfo {
			return ServerInfo{
				Code:      row.Code,
				Region:    row.Region,
				WorldName: row.WorldName,
			}
		}), nil
	})
	if err != nil {
		return nil, err
	}
	return servers, nil
}

// Resolve validates a server code against the registry. Goes straight to
// the repository; registry reads are cheap and the result gates every
// other endpoint.
func (s *Service) Resolve(ctx context.Context, code string) (*GameServer, *common.Error) {
	server, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, common.NewError("a3f1c9d2-0b7e-4f7a-9a31-b55c10aa2001", "failed to resolve server")
	}
	if server == nil || !server.Enabled {
		return nil, common.NewError("d8e4b6f0-9c2a-4f18-8d3e-b55c10aa2002", "unknown server")
	}
	return server, nil
}
