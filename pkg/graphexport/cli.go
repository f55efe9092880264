package graphexport

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/fdcrail/railmanager/pkg/database"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "graph-export",
		Usage: "Exports a stored network into neo4j",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "export a network graph",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "network",
						Usage:    "name of the stored network",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					network, err := database.GetNetwork(context.Background(), c.String("network"))
					if err != nil {
						return err
					}

					return Export(context.Background(), network)
				},
			},
		},
	}
}
