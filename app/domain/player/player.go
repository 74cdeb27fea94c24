package player

import (
	"context"

	"gametrack.gg/stats-api/app/domain/query"
)

// Player is the latest tracked state of one player on one game world.
type Player struct {
	ID           uint
	ServerCode   string
	GameID       int64
	Name         string
	AllianceID   int64
	AllianceName string
	Level        int
	Might        int64
	Loot         int64
	Honor        int64
}

type PlayerFilter struct {
	ServerCode string
	Search     string
}

type PlayerRepository interface {
	FindByFilter(ctx context.Context, filter PlayerFilter, pagination *query.Pagination) ([]*Player, int64, error)
	FindByGameID(ctx context.Context, serverCode string, gameID int64) (*Player, error)
}
