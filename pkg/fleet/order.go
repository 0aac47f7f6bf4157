package fleet

// Ticks is a duration or point in simulation time, measured in game ticks.
type Ticks int64

// DayTicks is the number of ticks in one in-game day.
const DayTicks Ticks = 74

// StationID identifies a station. The empty string means "no station".
type StationID string

const InvalidStation StationID = ""

type OrderType string

const (
	OrderGoToStation  OrderType = "GoToStation"
	OrderGoToWaypoint           = "GoToWaypoint"
	OrderGoToDepot              = "GoToDepot"
	OrderConditional            = "Conditional"
	OrderImplicit               = "Implicit"
)

type LoadDirective string

const (
	LoadIfPossible LoadDirective = "LoadIfPossible"
	LoadNone                     = "NoLoad"
)

type UnloadDirective string

const (
	UnloadIfAccepted UnloadDirective = "UnloadIfAccepted"
	UnloadNone                       = "NoUnload"
	UnloadAll                        = "UnloadAll"
)

// Order is one immutable step in a vehicle's route.
type Order struct {
	Type        OrderType `groups:"basic"`
	Destination StationID `groups:"basic"`

	Load    LoadDirective   `groups:"basic"`
	Unload  UnloadDirective `groups:"basic"`
	NonStop bool            `groups:"basic"`

	WaitTime         Ticks `groups:"basic"`
	TravelTime       Ticks `groups:"basic"`
	TravelTimetabled bool  `groups:"basic"`

	// BranchTo is the target order index of a Conditional order.
	// A value outside the order list means the branch is unresolved.
	BranchTo int `groups:"basic"`

	// DepotHalt marks a GoToDepot order that stops the vehicle there.
	DepotHalt bool `groups:"basic"`
}

// StopsAtDestination reports whether the vehicle actually halts at the
// order's destination rather than passing through it.
func (o *Order) StopsAtDestination() bool {
	return !o.NonStop
}

// HaltsInDepot reports whether the order sends the vehicle to a depot to stop.
func (o *Order) HaltsInDepot() bool {
	return o.Type == OrderGoToDepot && o.DepotHalt
}

// OrderList is a vehicle's route as a fixed-length ordered sequence.
// The route is circular: the order after the last one is the first one.
type OrderList []Order

// Next returns the index of the order following index i, wrapping around to
// the first order at the end of the list.
func (ol OrderList) Next(i int) int {
	return (i + 1) % len(ol)
}

// At returns a pointer to the order at index i, or nil if i is out of range.
// Conditional branch targets go through here so an unresolved target reads
// as nil rather than panicking.
func (ol OrderList) At(i int) *Order {
	if i < 0 || i >= len(ol) {
		return nil
	}

	return &ol[i]
}

// CallsAt reports whether any order in the list is destined for the station.
func (ol OrderList) CallsAt(station StationID) bool {
	for i := range ol {
		if ol[i].Destination == station {
			return true
		}
	}

	return false
}
