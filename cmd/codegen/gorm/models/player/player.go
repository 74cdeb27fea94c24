package player

import (
	"gametrack.gg/stats-api/app/infrastructure/database/dbschema"
	"gorm.io/gen"
)

// Raw SQL
type Querier interface {
}

func RegisterPlayer(g *gen.Generator) {
	g.ApplyBasic(dbschema.Player{})
	g.ApplyInterface(func(Querier) {}, dbschema.Player{})
}
