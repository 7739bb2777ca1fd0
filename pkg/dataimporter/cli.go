package dataimporter

import (
	"github.com/sawaari/sawaari/pkg/database"
	"github.com/sawaari/sawaari/pkg/dataimporter/insertrecords"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Load reference data into the database",
		Subcommands: []*cli.Command{
			{
				Name:  "seed",
				Usage: "upsert the yaml insert-records into the database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "directory",
						Value: "data/insert-records/",
						Usage: "directory containing insert-record yaml files",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					insertrecords.Insert(c.String("directory"))

					return nil
				},
			},
			{
				Name:  "stations-csv",
				Usage: "import station reference data from a csv file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path to the stations csv file",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					return ImportStationsCSV(c.String("file"))
				},
			},
		},
	}
}
