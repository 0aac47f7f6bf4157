package stats

import (
	"testing"

	"github.com/stationboard/stationboard/pkg/fleet"
)

func TestForSnapshot(t *testing.T) {
	snapshot := &fleet.Snapshot{
		Name:        "test-fleet",
		CurrentDate: 500,
		Vehicles: []*fleet.Vehicle{
			{
				TransportType: fleet.TransportTypeRail,
				Lateness:      10,
				Units: []fleet.VehicleUnit{
					{CargoClass: fleet.CargoClassPassengers, CargoCapacity: 40},
				},
				Orders: fleet.OrderList{
					{Type: fleet.OrderGoToStation, Destination: "A", TravelTimetabled: true},
					{Type: fleet.OrderGoToStation, Destination: "B", TravelTimetabled: true},
				},
			},
			{
				TransportType: fleet.TransportTypeRail,
				Lateness:      30,
				Units: []fleet.VehicleUnit{
					{CargoClass: fleet.CargoClassFreight, CargoCapacity: 30},
				},
				Orders: fleet.OrderList{
					{Type: fleet.OrderGoToStation, Destination: "A", TravelTimetabled: true},
					{Type: fleet.OrderGoToStation, Destination: "C"},
				},
			},
			{
				TransportType:  fleet.TransportTypeBus,
				Lateness:       -5,
				StoppedInDepot: true,
				Orders: fleet.OrderList{
					{Type: fleet.OrderGoToStation, Destination: "B", TravelTimetabled: true},
				},
			},
		},
	}

	fleetStats := ForSnapshot(snapshot)

	if fleetStats.Vehicles != 3 {
		t.Errorf("expected 3 vehicles, got %d", fleetStats.Vehicles)
	}
	if fleetStats.VehiclesByTransportType[fleet.TransportTypeRail] != 2 {
		t.Errorf("expected 2 rail vehicles, got %d", fleetStats.VehiclesByTransportType[fleet.TransportTypeRail])
	}
	if fleetStats.PassengerVehicles != 1 || fleetStats.FreightVehicles != 2 {
		t.Errorf("expected 1 passenger and 2 freight vehicles, got %d and %d",
			fleetStats.PassengerVehicles, fleetStats.FreightVehicles)
	}
	if fleetStats.StoppedVehicles != 1 {
		t.Errorf("expected 1 stopped vehicle, got %d", fleetStats.StoppedVehicles)
	}
	if fleetStats.Stations != 3 {
		t.Errorf("expected 3 stations, got %d", fleetStats.Stations)
	}
	if fleetStats.Orders != 5 || fleetStats.TimetabledOrders != 4 {
		t.Errorf("expected 4 of 5 orders timetabled, got %d of %d",
			fleetStats.TimetabledOrders, fleetStats.Orders)
	}
	if fleetStats.TimetableCoverage != 0.8 {
		t.Errorf("expected coverage 0.8, got %f", fleetStats.TimetableCoverage)
	}
	if fleetStats.LateVehicles != 2 || fleetStats.EarlyVehicles != 1 {
		t.Errorf("expected 2 late and 1 early vehicle, got %d and %d",
			fleetStats.LateVehicles, fleetStats.EarlyVehicles)
	}
	if fleetStats.AverageLateness != 20 {
		t.Errorf("expected average lateness 20, got %f", fleetStats.AverageLateness)
	}
}

func TestForSnapshotEmpty(t *testing.T) {
	fleetStats := ForSnapshot(&fleet.Snapshot{Name: "empty"})

	if fleetStats.Vehicles != 0 || fleetStats.Orders != 0 {
		t.Errorf("expected zeroed stats, got %+v", fleetStats)
	}
	if fleetStats.TimetableCoverage != 0 || fleetStats.AverageLateness != 0 {
		t.Error("expected ratios to stay zero for an empty fleet")
	}
}
