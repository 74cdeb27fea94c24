package repository

import (
	"gametrack.gg/stats-api/app/infrastructure/database/repository/alliancerepo"
	"gametrack.gg/stats-api/app/infrastructure/database/repository/gameserverrepo"
	"gametrack.gg/stats-api/app/infrastructure/database/repository/playerrepo"
	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	gameserverrepo.NewGameServerGormRepository,
	playerrepo.NewPlayerGormRepository,
	alliancerepo.NewAllianceGormRepository,
)
