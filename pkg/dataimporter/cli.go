package dataimporter

import (
	"context"
	"os"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/fdcrail/railmanager/pkg/database"
	"github.com/fdcrail/railmanager/pkg/railfile"
	"github.com/fdcrail/railmanager/pkg/railnet"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Imports network and schedule documents",
		Subcommands: []*cli.Command{
			{
				Name:      "import-file",
				Usage:     "import a .rail document into the database",
				ArgsUsage: "<file path>",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("file path must be provided", 1)
					}

					doc, err := decodeFile(c.Args().First())
					if err != nil {
						return err
					}

					if err := database.Connect(); err != nil {
						return err
					}

					ctx := context.Background()
					if err := database.UpsertNetwork(ctx, doc.Network); err != nil {
						return err
					}
					if err := database.UpsertLines(ctx, doc.Lines); err != nil {
						return err
					}
					if err := database.UpsertTrains(ctx, doc.Trains); err != nil {
						return err
					}

					log.Info().
						Str("network", doc.Network.Name).
						Int("nodes", len(doc.Network.Nodes)).
						Int("edges", len(doc.Network.Edges)).
						Int("lines", len(doc.Lines)).
						Int("trains", len(doc.Trains)).
						Msg("Imported document")

					return nil
				},
			},
			{
				Name:      "import-stations",
				Usage:     "import a stations CSV into a stored network",
				ArgsUsage: "<csv path>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "network",
						Usage:    "name of the stored network to extend",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("csv path must be provided", 1)
					}

					file, err := os.Open(c.Args().First())
					if err != nil {
						return err
					}
					defer file.Close()

					if err := database.Connect(); err != nil {
						return err
					}

					ctx := context.Background()

					network, err := database.GetNetwork(ctx, c.String("network"))
					if err != nil {
						// First import into this name starts a fresh network.
						network = railnet.NewNetworkGraph(c.String("network"))
					}

					imported, err := ImportStationsCSV(network, file)
					if err != nil {
						return err
					}

					if err := database.UpsertNetwork(ctx, network); err != nil {
						return err
					}

					log.Info().Int("stations", imported).Str("network", network.Name).Msg("Imported stations")

					return nil
				},
			},
			{
				Name:      "inspect",
				Usage:     "dump a .rail document",
				ArgsUsage: "<file path>",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("file path must be provided", 1)
					}

					doc, err := decodeFile(c.Args().First())
					if err != nil {
						return err
					}

					pretty.Println(doc.Network)
					pretty.Println(doc.Lines)
					pretty.Println(doc.Trains)

					return nil
				},
			},
		},
	}
}

func decodeFile(path string) (*railfile.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return railfile.Decode(file)
}
