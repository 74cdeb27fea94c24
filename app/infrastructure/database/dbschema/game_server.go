package dbschema

import (
	"gametrack.gg/stats-api/app/domain/gameserver"
	"gametrack.gg/stats-api/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(GameServer{})
}

// GameServer is one row of the server registry: a playable game world and
// the region pool its tracked data lives in.
type GameServer struct {
	BaseModel
	Code      string `gorm:"uniqueIndex"`
	Region    string
	WorldName string
	DSN       string
	LiveHost  string
	Enabled   bool
}

func NewSchemaGameServer(s *gameserver.GameServer) *GameServer {
	return &GameServer{
		BaseModel: BaseModel{
			ID: s.ID,
		},
		Code:      s.Code,
		Region:    s.Region,
		WorldName: s.WorldName,
		DSN:       s.DSN,
		LiveHost:  s.LiveHost,
		Enabled:   s.Enabled,
	}
}

func (s *GameServer) EtoD() *gameserver.GameServer {
	return &gameserver.GameServer{
		ID:        s.ID,
		Code:      s.Code,
		Region:    s.Region,
		WorldName: s.WorldName,
		DSN:       s.DSN,
		LiveHost:  s.LiveHost,
		Enabled:   s.Enabled,
	}
}
