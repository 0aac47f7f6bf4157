package stats

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/stationboard/stationboard/pkg/scenario"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Summarise a fleet scenario",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "path of the scenario document",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			document, err := scenario.LoadFile(c.String("file"))
			if err != nil {
				return err
			}

			snapshot, err := document.Snapshot()
			if err != nil {
				return err
			}

			output, err := json.MarshalIndent(ForSnapshot(snapshot), "", "  ")
			if err != nil {
				return err
			}

			fmt.Println(string(output))

			return nil
		},
	}
}
