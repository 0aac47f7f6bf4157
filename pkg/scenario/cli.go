package scenario

import (
	"encoding/json"
	"fmt"

	"github.com/kr/pretty"
	"github.com/liip/sheriff"
	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"

	"github.com/stationboard/stationboard/pkg/board"
	"github.com/stationboard/stationboard/pkg/fleet"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "scenario",
		Usage: "Work with fleet scenario documents",
		Subcommands: []*cli.Command{
			{
				Name:  "inspect",
				Usage: "parse a scenario document and dump it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path of the scenario document",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					document, err := LoadFile(c.String("file"))
					if err != nil {
						return err
					}

					pretty.Println(document)

					return nil
				},
			},
			{
				Name:  "board",
				Usage: "compute predicted boards for stations in a scenario",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path of the scenario document",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "station",
						Usage: "station identifier to compute a board for (defaults to every station)",
					},
					&cli.StringFlag{
						Name:  "mode",
						Value: "departure",
						Usage: "departure or arrival",
					},
					&cli.BoolFlag{
						Name:  "via",
						Usage: "include services passing through without stopping",
					},
					&cli.BoolFlag{
						Name:  "passengers-only",
						Usage: "only include passenger vehicles",
					},
					&cli.BoolFlag{
						Name:  "freight-only",
						Usage: "only include freight vehicles",
					},
				},
				Action: computeBoards,
			},
		},
	}
}

type stationBoard struct {
	Station fleet.StationID `groups:"basic"`
	Entries []*board.Entry  `groups:"basic"`
}

func computeBoards(c *cli.Context) error {
	document, err := LoadFile(c.String("file"))
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

	mode := board.ModeDeparture
	switch c.String("mode") {
	case "departure":
		mode = board.ModeDeparture
	case "arrival":
		mode = board.ModeArrival
	default:
		return fmt.Errorf("unknown board mode %s", c.String("mode"))
	}

	var stations []fleet.StationID
	for _, station := range c.StringSlice("station") {
		stations = append(stations, fleet.StationID(station))
	}
	if len(stations) == 0 {
		stations = snapshot.Stations()
	}

	// Each board is computed independently over the same read-only
	// snapshot, so the stations can fan out.
	p := pool.NewWithResults[stationBoard]()

	for _, station := range stations {
		station := station
		p.Go(func() stationBoard {
			request := board.Request{
				Station:        station,
				TransportTypes: fleet.TransportTypes,
				Mode:           mode,
				IncludeVia:     c.Bool("via"),

				IncludePassengers: !c.Bool("freight-only"),
				IncludeFreight:    !c.Bool("passengers-only"),
			}

			return stationBoard{
				Station: station,
				Entries: board.Generate(snapshot, snapshot.CurrentDate, request, config),
			}
		})
	}

	boards := p.Wait()

	// Pool results come back in completion order; restore request order.
	slices.SortFunc(boards, func(a, b stationBoard) int {
		return slices.Index(stations, a.Station) - slices.Index(stations, b.Station)
	})

	boardsReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, boards)
	if err != nil {
		return err
	}

	output, err := json.MarshalIndent(boardsReduced, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(output))

	return nil
}
