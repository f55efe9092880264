package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/fdcrail/railmanager/pkg/api"
	"github.com/fdcrail/railmanager/pkg/dataimporter"
	"github.com/fdcrail/railmanager/pkg/graphexport"
	"github.com/fdcrail/railmanager/pkg/validator"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("RAILMANAGER_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("RAILMANAGER_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "railmanager",
		Description: "Single binary of truth for the railway manager - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			dataimporter.RegisterCLI(),
			graphexport.RegisterCLI(),
			validator.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
