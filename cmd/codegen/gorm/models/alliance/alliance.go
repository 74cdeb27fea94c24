package alliance

import (
	"gametrack.gg/stats-api/app/infrastructure/database/dbschema"
	"gorm.io/gen"
)

// Raw SQL
type Querier interface {
}

func RegisterAlliance(g *gen.Generator) {
	g.ApplyBasic(dbschema.Alliance{})
	g.ApplyInterface(func(Querier) {}, dbschema.Alliance{})
}
