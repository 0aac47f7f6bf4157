package api

import (
	"github.com/urfave/cli/v2"

	"github.com/stationboard/stationboard/pkg/dataaggregator/global"
	"github.com/stationboard/stationboard/pkg/redis_client"
	"github.com/stationboard/stationboard/pkg/scenario"
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
						Name:     "scenario",
						Usage:    "path of the fleet scenario document to serve boards for",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "disable-cache",
						Usage: "skip connecting to redis and serve uncached results",
					},
				},
				Action: func(c *cli.Context) error {
					document, err := scenario.LoadFile(c.String("scenario"))
					if err != nil {
						return err
					}

					snapshot, err := document.Snapshot()
					if err != nil {
						return err
					}

					config, err := document.BoardConfig()
					if err != nil {
						return err
					}

					withCache := !c.Bool("disable-cache")
					if withCache {
						if err := redis_client.Connect(); err != nil {
							return err
						}
					}

					global.Setup(snapshot, config, withCache)

					return SetupServer(c.String("listen"), snapshot)
				},
			},
		},
	}
}
