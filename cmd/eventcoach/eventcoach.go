package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/eventcoach/pkg/api"
	"github.com/travigo/eventcoach/pkg/config"
	"github.com/travigo/eventcoach/pkg/datacheck"
	"github.com/travigo/eventcoach/pkg/lookup"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("EVENTCOACH_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("EVENTCOACH_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "eventcoach",
		Description: "Booking lookup for event coach transport",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "path to the YAML config file",
			},
		},

		Commands: []*cli.Command{
			api.RegisterCLI(),
			lookup.RegisterBookingCLI(),
			lookup.RegisterRouteCLI(),
			datacheck.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
