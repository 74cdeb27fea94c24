package alliance

import (
	"context"

	"gametrack.gg/stats-api/app/domain/query"
)

// Alliance is the latest tracked state of one alliance on one game world.
type Alliance struct {
	ID          uint
	ServerCode  string
	GameID      int64
	Name        string
	MemberCount int
	Might       int64
	Loot        int64
}

type AllianceFilter struct {
	ServerCode string
	Search     string
}

type AllianceRepository interface {
	FindByFilter(ctx context.Context, filter AllianceFilter, pagination *query.Pagination) ([]*Alliance, int64, error)
	FindByGameID(ctx context.Context, serverCode string, gameID int64) (*Alliance, error)
}
