package gameserver

import "context"

// GameServer is one registered game world and the region pool its tracked
// data lives in.
type GameServer struct {
	ID        uint
	Code      string
	Region    string
	WorldName string
	DSN       string
	LiveHost  string
	Enabled   bool
}

type GameServerFilter struct {
	Code    *string
	Region  *string
	Enabled *bool
}

type GameServerRepository interface {
	FindByFilter(ctx context.Context, filter GameServerFilter) ([]*GameServer, error)
	FindByCode(ctx context.Context, code string) (*GameServer, error)
}
