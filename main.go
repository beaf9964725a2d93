package main

import (
	"os"

	"github.com/darkroomtools/easeld/cli"
	"github.com/darkroomtools/easeld/config"
	"github.com/darkroomtools/easeld/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.LoadLogging()

	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("failed to load configuration")
		panic(err)
	}
	config.SetGlobal(cfg)

	if err := cli.Run(*cfg); err != nil {
		log.Logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
