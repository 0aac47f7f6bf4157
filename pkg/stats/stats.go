package stats

import (
	"github.com/stationboard/stationboard/pkg/fleet"
)

// FleetStats summarises a fleet snapshot: how many vehicles are running,
// how well timetabled they are, and how punctually they run.
type FleetStats struct {
	Name        string      `groups:"basic"`
	CurrentDate fleet.Ticks `groups:"basic"`

	Vehicles                int                         `groups:"basic"`
	VehiclesByTransportType map[fleet.TransportType]int `groups:"basic"`

	PassengerVehicles int `groups:"basic"`
	FreightVehicles   int `groups:"basic"`
	StoppedVehicles   int `groups:"basic"`

	Stations int `groups:"basic"`

	Orders            int     `groups:"basic"`
	TimetabledOrders  int     `groups:"basic"`
	TimetableCoverage float64 `groups:"basic"`

	LateVehicles  int `groups:"basic"`
	EarlyVehicles int `groups:"basic"`

	// AverageLateness is the mean lateness in ticks across vehicles that are
	// running late.
	AverageLateness float64 `groups:"basic"`
}

func ForSnapshot(snapshot *fleet.Snapshot) FleetStats {
	fleetStats := FleetStats{
		Name:        snapshot.Name,
		CurrentDate: snapshot.CurrentDate,

		Vehicles:                len(snapshot.Vehicles),
		VehiclesByTransportType: map[fleet.TransportType]int{},

		Stations: len(snapshot.Stations()),
	}

	var latenessTotal fleet.Ticks

	for _, vehicle := range snapshot.Vehicles {
		fleetStats.VehiclesByTransportType[vehicle.TransportType] += 1

		if vehicle.CarriesPassengers() {
			fleetStats.PassengerVehicles += 1
		} else {
			fleetStats.FreightVehicles += 1
		}

		if vehicle.StoppedInDepot {
			fleetStats.StoppedVehicles += 1
		}

		if vehicle.Lateness > 0 {
			fleetStats.LateVehicles += 1
			latenessTotal += vehicle.Lateness
		} else if vehicle.Lateness < 0 {
			fleetStats.EarlyVehicles += 1
		}

		for i := range vehicle.Orders {
			order := &vehicle.Orders[i]

			fleetStats.Orders += 1
			if order.TravelTimetabled {
				fleetStats.TimetabledOrders += 1
			}
		}
	}

	if fleetStats.Orders > 0 {
		fleetStats.TimetableCoverage = float64(fleetStats.TimetabledOrders) / float64(fleetStats.Orders)
	}
	if fleetStats.LateVehicles > 0 {
		fleetStats.AverageLateness = float64(latenessTotal) / float64(fleetStats.LateVehicles)
	}

	return fleetStats
}
