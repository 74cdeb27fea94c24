package dbschema

import (
	"gametrack.gg/stats-api/app/domain/player"
	"gametrack.gg/stats-api/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Player{})
}

// Player is the latest tracked state of one player on one game world.
type Player struct {
	BaseModel
	ServerCode   string `gorm:"index:idx_player_server_game,unique"`
	GameID       int64  `gorm:"index:idx_player_server_game,unique"`
	Name         string `gorm:"index"`
	AllianceID   int64
	AllianceName string
	Level        int
	Might        int64 `gorm:"index"`
	Loot         int64
	Honor        int64
}

func NewSchemaPlayer(p *player.Player) *Player {
	return &Player{
		BaseModel: BaseModel{
			ID: p.ID,
		},
		ServerCode:   p.ServerCode,
		GameID:       p.GameID,
		Name:         p.Name,
		AllianceID:   p.AllianceID,
		AllianceName: p.AllianceName,
		Level:        p.Level,
		Might:        p.Might,
		Loot:         p.Loot,
		Honor:        p.Honor,
	}
}

func (p *Player) EtoD() *player.Player {
	return &player.Player{
		ID:           p.ID,
		ServerCode:   p.ServerCode,
		GameID:       p.GameID,
		Name:         p.Name,
		AllianceID:   p.AllianceID,
		AllianceName: p.AllianceName,
		Level:        p.Level,
		Might:        p.Might,
		Loot:         p.Loot,
		Honor:        p.Honor,
	}
}
