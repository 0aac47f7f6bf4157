package fleet

import (
	"github.com/jinzhu/copier"
)

// Roster supplies the vehicles that have a station somewhere in their orders.
// A board computation consumes the roster, it never owns or mutates it.
type Roster interface {
	VehiclesAt(station StationID, transportType TransportType) ([]*Vehicle, error)
}

// Snapshot is an immutable capture of the whole fleet at one instant.
// It implements Roster by scanning the vehicles' order lists.
type Snapshot struct {
	Name string `groups:"basic"`

	// CurrentDate is the absolute simulation time of the capture.
	CurrentDate Ticks `groups:"basic"`

	Vehicles []*Vehicle `groups:"detailed"`
}

func (s *Snapshot) VehiclesAt(station StationID, transportType TransportType) ([]*Vehicle, error) {
	var vehicles []*Vehicle

	for _, vehicle := range s.Vehicles {
		if vehicle.TransportType != transportType {
			continue
		}

		if vehicle.Orders.CallsAt(station) {
			vehicles = append(vehicles, vehicle)
		}
	}

	return vehicles, nil
}

// Stations returns the identifiers of every station referenced by any order
// in the snapshot, in first-seen order.
func (s *Snapshot) Stations() []StationID {
	seen := map[StationID]bool{}
	var stations []StationID

	for _, vehicle := range s.Vehicles {
		for i := range vehicle.Orders {
			destination := vehicle.Orders[i].Destination
			if destination == InvalidStation || seen[destination] {
				continue
			}

			seen[destination] = true
			stations = append(stations, destination)
		}
	}

	return stations
}

// Clone returns a deep copy of the snapshot so callers can hold onto a
// stable fleet state while the original continues to be updated.
func (s *Snapshot) Clone() (*Snapshot, error) {
	var cloned Snapshot

	err := copier.CopyWithOption(&cloned, s, copier.Option{DeepCopy: true})
	if err != nil {
		return nil, err
	}

	return &cloned, nil
}
