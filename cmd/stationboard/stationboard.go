package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/stationboard/stationboard/pkg/api"
	"github.com/stationboard/stationboard/pkg/scenario"
	"github.com/stationboard/stationboard/pkg/stats"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("STATIONBOARD_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("STATIONBOARD_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "stationboard",
		Description: "Predicted departure and arrival boards for simulated fleets",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			scenario.RegisterCLI(),
			stats.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
