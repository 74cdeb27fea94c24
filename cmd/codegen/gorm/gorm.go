package main

import (
	"gametrack.gg/stats-api/cmd/codegen/gorm/models/alliance"
	"gametrack.gg/stats-api/cmd/codegen/gorm/models/gameserver"
	"gametrack.gg/stats-api/cmd/codegen/gorm/models/player"
	"gametrack.gg/stats-api/config/environment_variables"
	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

func main() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	db, err := gorm.Open(postgres.Open(environment_variables.EnvironmentVariables.DB_POSTGRESQL_WRITE_DSN))
	if err != nil {
		panic(err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./app/infrastructure/database/gormgen",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable: true,
	})

	g.UseDB(db)
	gameserver.RegisterGameServer(g)
	player.RegisterPlayer(g)
	alliance.RegisterAlliance(g)
	g.Execute()
}
