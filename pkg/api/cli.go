package api

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/fdcrail/railmanager/pkg/database"
	"github.com/fdcrail/railmanager/pkg/railfile"
	"github.com/fdcrail/railmanager/pkg/redis_client"
	"github.com/fdcrail/railmanager/pkg/timetable"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "network",
						Usage: "name of the stored network to serve (empty: load from --file)",
					},
					&cli.StringFlag{
						Name:  "file",
						Usage: "path of a .rail document to serve",
					},
				},
				Action: func(c *cli.Context) error {
					manager, err := loadManager(c)
					if err != nil {
						return err
					}

					if err := redis_client.Connect(); err != nil {
						log.Warn().Err(err).Msg("Redis unavailable, running without the route cache")
					}

					return SetupServer(c.String("listen"), manager)
				},
			},
		},
	}
}

func loadManager(c *cli.Context) (*timetable.Manager, error) {
	if file := c.String("file"); file != "" {
		reader, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer reader.Close()

		doc, err := railfile.Decode(reader)
		if err != nil {
			return nil, err
		}

		manager := timetable.NewManager(doc.Network)
		for _, line := range doc.Lines {
			if err := manager.Lines.Add(line); err != nil {
				return nil, err
			}
		}
		for _, train := range doc.Trains {
			if err := manager.Trains.Add(train); err != nil {
				return nil, err
			}
		}

		return manager, nil
	}

	if err := database.Connect(); err != nil {
		return nil, err
	}

	network, err := database.GetNetwork(context.Background(), c.String("network"))
	if err != nil {
		return nil, err
	}

	manager := timetable.NewManager(network)

	lines, err := database.GetLines(context.Background())
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := manager.Lines.Add(line); err != nil {
			return nil, err
		}
	}

	trains, err := database.GetTrains(context.Background())
	if err != nil {
		return nil, err
	}
	for _, train := range trains {
		if err := manager.Trains.Add(train); err != nil {
			return nil, err
		}
	}

	return manager, nil
}
