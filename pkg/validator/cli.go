package validator

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fdcrail/railmanager/pkg/railfile"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Checks a schedule document for capacity conflicts",
		Subcommands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "validate a .rail document",
				ArgsUsage: "<file path>",
				Action: func(c *cli.Context) error {
					if c.Args().Len() != 1 {
						return cli.Exit("file path must be provided", 1)
					}

					file, err := os.Open(c.Args().First())
					if err != nil {
						return err
					}
					defer file.Close()

					doc, err := railfile.Decode(file)
					if err != nil {
						return err
					}

					conflicts := Validate(doc.Trains, doc.Network)
					for _, conflict := range conflicts {
						fmt.Printf("%s %s %s trains=%v\n", conflict.Kind, conflict.ResourceID, conflict.Window, conflict.TrainIDs)
					}

					if len(conflicts) > 0 {
						return cli.Exit(fmt.Sprintf("%d conflicts found", len(conflicts)), 1)
					}

					fmt.Println("no conflicts")

					return nil
				},
			},
		},
	}
}
