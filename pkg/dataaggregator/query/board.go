package query

import (
	"github.com/stationboard/stationboard/pkg/board"
	"github.com/stationboard/stationboard/pkg/fleet"
)

// Board requests the predicted board for one station. Zero-value filters
// fall back to the source's defaults: all transport types, passengers and
// freight both included.
type Board struct {
	Station fleet.StationID
	Mode    board.Mode

	TransportTypes []fleet.TransportType

	IncludeVia bool

	PassengersOnly bool
	FreightOnly    bool

	// Count overrides the configured result cap when positive.
	Count int
}
