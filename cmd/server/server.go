package main

import (
	"context"

	"gametrack.gg/stats-api/app/domain/cron"
	"gametrack.gg/stats-api/app/interfaces/http"
	"gametrack.gg/stats-api/app/utils/httpclients/gamews"
	"gametrack.gg/stats-api/app/utils/httpclients/olap"
	"gametrack.gg/stats-api/config/environment_variables"
	"github.com/mileusna/crontab"
)

type Application struct {
	HttpServer  *http.HttpServer
	CronService *cron.CronService
}

func (application *Application) Start() {
	if err := application.HttpServer.Run(); err != nil {
		panic(err)
	}
}

func init() {
	environment_variables.EnvironmentVariables.LoadFromEnv()
	gamews.Init()
	olap.Init()
}

func main() {
	application, err := CreateApplication()
	if err != nil {
		panic(err)
	}

	ctab := crontab.New()
	application.CronService.Start(context.Background(), ctab)

	application.Start()
}
