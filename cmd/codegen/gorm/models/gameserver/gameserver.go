package gameserver

import (
	"gametrack.gg/stats-api/app/infrastructure/database/dbschema"
	"gorm.io/gen"
)

// Raw SQL
type Querier interface {
}

func RegisterGameServer(g *gen.Generator) {
	g.ApplyBasic(dbschema.GameServer{})
	g.ApplyInterface(func(Querier) {}, dbschema.GameServer{})
}
