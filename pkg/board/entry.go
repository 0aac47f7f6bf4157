package board

import (
	"github.com/stationboard/stationboard/pkg/fleet"
)

type Status string

const (
	StatusTravelling Status = "Travelling"
	StatusArrived           = "Arrived"
	StatusCancelled         = "Cancelled"
)

// CallAt is one station a service calls at, with the date it is scheduled to
// be reached. A zero date means the timetable had no travel time for some leg
// on the way, so no date could be computed.
type CallAt struct {
	Station       fleet.StationID `groups:"basic"`
	ScheduledDate fleet.Ticks     `groups:"basic"`
}

// Equal compares two calls by station only. Dates are display data; cycle
// detection and dedup care about where the vehicle calls, not when.
func (c CallAt) Equal(other CallAt) bool {
	return c.Station == other.Station
}

func containsCall(calls []CallAt, c CallAt) bool {
	for _, call := range calls {
		if call.Equal(c) {
			return true
		}
	}

	return false
}

// Entry is one row of a departure or arrival board.
type Entry struct {
	Type Mode `groups:"basic"`

	// ScheduledDate is the absolute date the call is scheduled for.
	ScheduledDate fleet.Ticks `groups:"basic"`

	// Lateness is how many ticks beyond the scheduled date the vehicle is
	// expected to need. Never negative.
	Lateness fleet.Ticks `groups:"basic"`

	Status Status `groups:"basic"`

	Vehicle *fleet.Vehicle `groups:"detailed"`
	Order   *fleet.Order   `groups:"detailed"`

	// Via is the station the service runs via without stopping, if any.
	Via fleet.StationID `groups:"basic"`

	// Terminus is where the journey segment ends for display purposes.
	// For arrivals it holds the origin of the inbound service instead.
	Terminus CallAt `groups:"basic"`

	// CallingAt lists the stations called at en route, in travel order.
	CallingAt []CallAt `groups:"basic"`
}

// RendersIdenticalTo reports whether two entries would produce the same
// visible board row. Vehicle identity is deliberately ignored: two vehicles
// working the same diagram merge into one row.
func (e *Entry) RendersIdenticalTo(other *Entry) bool {
	if e.Type != other.Type ||
		e.Status != other.Status ||
		e.Via != other.Via ||
		!e.Terminus.Equal(other.Terminus) ||
		len(e.CallingAt) != len(other.CallingAt) {
		return false
	}

	for i, call := range e.CallingAt {
		if !call.Equal(other.CallingAt[i]) {
			return false
		}
	}

	return true
}
