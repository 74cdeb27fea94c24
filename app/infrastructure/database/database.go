package database

import (
	"gametrack.gg/stats-api/app/utils/logger"
	"gametrack.gg/stats-api/config/environment_variables"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/dbresolver"
)

var SchemaRegistry []interface{}

func RegisterSchemaForAutoMigrate(models ...interface{}) {
	SchemaRegistry = append(SchemaRegistry, models...)
}

// RegionLabel names the dbresolver config holding a game region's pool.
// Repositories route region-local reads with
// db.Clauses(dbresolver.Use(RegionLabel(code))).
func RegionLabel(serverCode string) string {
	return "region:" + serverCode
}

// regionRow mirrors the columns of game_server needed to build the pools.
// Kept local to avoid a cycle with dbschema.
type regionRow struct {
	Code string
	DSN  string
}

func NewDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(environment_variables.EnvironmentVariables.DB_POSTGRESQL_WRITE_DSN), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	if err != nil {
		logger.GetLogger().
			WithField("error_code", "0c4f6f0e-5b26-4dd6-9f34-2d5b1f0aa001").
			Fatalf("unable to connect to database: %v", err)
		return nil, err
	}

	if environment_variables.EnvironmentVariables.ENABLE_AUTO_MIGRATE {
		for _, model := range SchemaRegistry {
			if err := db.AutoMigrate(model); err != nil {
				logger.GetLogger().
					WithField("error_code", "52a3d9b0-77a1-4a5f-8a11-4f2f3f6aa002").
					Fatalf("failed to auto migrate schema: %T, error: %v", model, err)
				return nil, err
			}
		}
	}

	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(
			environment_variables.EnvironmentVariables.DB_POSTGRESQL_READ1_DSN,
		)},
		Policy: dbresolver.RandomPolicy{},
	})

	// Region pools come from the server registry. Rows without a DSN share
	// the primary. Topology changes need a restart; the nightly refresh
	// only updates row contents.
	var regions []regionRow
	if err := db.Table("game_server").
		Select("code", "dsn").
		Where("enabled = ? AND dsn <> ''", true).
		Scan(&regions).Error; err != nil {
		logger.GetLogger().Warnf("unable to load region pools, falling back to primary: %v", err)
	}
	for _, region := range regions {
		resolver = resolver.Register(dbresolver.Config{
			Sources: []gorm.Dialector{postgres.Open(region.DSN)},
		}, RegionLabel(region.Code))
	}

	if err := db.Use(resolver); err != nil {
		logger.GetLogger().
			WithField("error_code", "7e21cc1d-2f4f-40db-9a56-6f7f3f6aa003").
			Fatalf("unable to set up connection pools: %v", err)
		return nil, err
	}

	return db, nil
}
