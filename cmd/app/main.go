package main

import (
	"github.com/BenlahcenSoufiane/AzurHotel/config"
	"github.com/BenlahcenSoufiane/AzurHotel/di"
	"github.com/BenlahcenSoufiane/AzurHotel/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
