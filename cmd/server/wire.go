//go:build wireinject

package main

import (
	"gametrack.gg/stats-api/app/domain"
	"gametrack.gg/stats-api/app/infrastructure"
	"gametrack.gg/stats-api/app/infrastructure/database"
	"gametrack.gg/stats-api/app/infrastructure/database/repository"
	"gametrack.gg/stats-api/app/interfaces/http"
	"gametrack.gg/stats-api/app/interfaces/http/routes"
	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		database.NewDB,
		repository.RepositoryProvider,
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
