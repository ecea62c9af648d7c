package main

import (
	"flightapi/config"
	"flightapi/di"
	"flightapi/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
