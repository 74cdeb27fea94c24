package dbschema

import (
	"gametrack.gg/stats-api/app/domain/alliance"
	"gametrack.gg/stats-api/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Alliance{})
}

// Alliance is the latest tracked state of one alliance on one game world.
type Alliance struct {
	BaseModel
	ServerCode  string `gorm:"index:idx_alliance_server_game,unique"`
	GameID      int64  `gorm:"index:idx_alliance_server_game,unique"`
	Name        string `gorm:"index"`
	MemberCount int
	Might       int64 `gorm:"index"`
	Loot        int64
}

func NewSchemaAlliance(a *alliance.Alliance) *Alliance {
	return &Alliance{
		BaseModel: BaseModel{
			ID: a.ID,
		},
		ServerCode:  a.ServerCode,
		GameID:      a.GameID,
		Name:        a.Name,
		MemberCount: a.MemberCount,
		Might:       a.Might,
		Loot:        a.Loot,
	}
}

func (a *Alliance) EtoD() *alliance.Alliance {
	return &alliance.Alliance{
		ID:          a.ID,
		ServerCode:  a.ServerCode,
		GameID:      a.GameID,
		Name:        a.Name,
		MemberCount: a.MemberCount,
		Might:       a.Might,
		Loot:        a.Loot,
	}
}
