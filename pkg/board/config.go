package board

import (
	"github.com/stationboard/stationboard/pkg/fleet"
)

type Mode string

const (
	ModeDeparture Mode = "Departure"
	ModeArrival        = "Arrival"
)

// ConditionalPolicy decides what a forward walk does when it meets a
// conditional order, since the branch outcome cannot be known ahead of time.
type ConditionalPolicy int

const (
	// ConditionalGiveUp abandons the walk at the conditional order.
	ConditionalGiveUp ConditionalPolicy = iota
	// ConditionalTakeBranch assumes the branch is always taken.
	ConditionalTakeBranch
	// ConditionalSkipBranch assumes the branch is never taken.
	ConditionalSkipBranch
)

// Config is the immutable configuration of one board computation.
type Config struct {
	// MaxHorizon is the furthest point in the future, in ticks from now,
	// for which entries are generated.
	MaxHorizon fleet.Ticks

	// MaxResults caps the number of entries on the board.
	MaxResults int

	ConditionalPolicy ConditionalPolicy

	// ShowAllStops also counts stations where the order suppresses
	// loading or unloading as board-worthy calls.
	ShowAllStops bool

	// MergeIdentical suppresses entries that would render identically to
	// an already accepted one.
	MergeIdentical bool

	// SmartTerminus shortens the displayed terminus of earlier departures
	// that share a route tail with later ones.
	SmartTerminus bool
}

// Request selects which vehicles and which kind of calls a board covers.
type Request struct {
	Station        fleet.StationID
	TransportTypes []fleet.TransportType
	Mode           Mode

	// IncludeVia also lists departures that pass through the station
	// without stopping.
	IncludeVia bool

	IncludePassengers bool
	IncludeFreight    bool
}
