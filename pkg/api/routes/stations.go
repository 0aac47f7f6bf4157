package routes

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"golang.org/x/exp/slices"

	"github.com/stationboard/stationboard/pkg/board"
	"github.com/stationboard/stationboard/pkg/dataaggregator"
	"github.com/stationboard/stationboard/pkg/dataaggregator/query"
	"github.com/stationboard/stationboard/pkg/fleet"
	"github.com/stationboard/stationboard/pkg/util"
)

var stationsSnapshot *fleet.Snapshot

func StationsRouter(router fiber.Router, snapshot *fleet.Snapshot) {
	stationsSnapshot = snapshot

	router.Get("/", listStations)
	router.Get("/:identifier/board", getStationBoard)
}

func listStations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"stations": stationsSnapshot.Stations(),
	})
}

func getStationBoard(c *fiber.Ctx) error {
	identifier := c.Params("identifier")

	if !slices.Contains(stationsSnapshot.Stations(), fleet.StationID(identifier)) {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Station matching Station Identifier",
		})
	}

	count, err := strconv.Atoi(c.Query("count", "0"))
	if err != nil || count < 0 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter count should be a non-negative integer",
		})
	}

	mode := board.ModeDeparture
	switch c.Query("mode", "departure") {
	case "departure":
		mode = board.ModeDeparture
	case "arrival":
		mode = board.ModeArrival
	default:
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Parameter mode should be departure or arrival",
		})
	}

	var transportTypes []fleet.TransportType
	if transportTypesQuery := c.Query("transport_types"); transportTypesQuery != "" {
		for _, transportType := range strings.Split(transportTypesQuery, ",") {
			transportTypes = append(transportTypes, fleet.TransportType(transportType))
		}
	}

	boardQuery := query.Board{
		Station:        fleet.StationID(identifier),
		Mode:           mode,
		TransportTypes: transportTypes,
		IncludeVia:     c.QueryBool("via", false),
		PassengersOnly: c.QueryBool("passengers_only", false),
		FreightOnly:    c.QueryBool("freight_only", false),
		Count:          count,
	}

	entries, err := dataaggregator.Lookup[[]*board.Entry](boardQuery)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if statusQuery := c.Query("status"); statusQuery != "" {
		util.InPlaceFilter(&entries, func(entry *board.Entry) bool {
			return string(entry.Status) == statusQuery
		})
	}

	entriesReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, entries)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce board entries",
		})
	}

	return c.JSON(fiber.Map{
		"station": identifier,
		"mode":    mode,
		"entries": entriesReduced,
	})
}
