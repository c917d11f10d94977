package main

import (
	"profmeet/config"
	"profmeet/di"
	"profmeet/shared/logger"
)

//	@title			ProfMeet API
//	@version		1.0
//	@description	Meeting booking between students and professors with calendar mirroring.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
