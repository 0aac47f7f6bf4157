package fleet

import (
	"reflect"
	"testing"
)

func routeOrder(destination StationID) Order {
	return Order{
		Type:        OrderGoToStation,
		Destination: destination,
		Load:        LoadIfPossible,
		Unload:      UnloadIfAccepted,
		BranchTo:    -1,
	}
}

func TestOrderListNextWrapsAround(t *testing.T) {
	orders := OrderList{routeOrder("A"), routeOrder("B"), routeOrder("C")}

	if next := orders.Next(0); next != 1 {
		t.Errorf("expected Next(0) == 1, got %d", next)
	}
	if next := orders.Next(2); next != 0 {
		t.Errorf("expected Next(2) to wrap to 0, got %d", next)
	}
}

func TestOrderListAtOutOfRange(t *testing.T) {
	orders := OrderList{routeOrder("A")}

	if order := orders.At(0); order == nil || order.Destination != "A" {
		t.Errorf("expected order A at index 0, got %v", order)
	}
	if order := orders.At(1); order != nil {
		t.Errorf("expected nil beyond the list, got %v", order)
	}
	if order := orders.At(-1); order != nil {
		t.Errorf("expected nil for a negative index, got %v", order)
	}
}

func TestOrderListCallsAt(t *testing.T) {
	orders := OrderList{routeOrder("A"), routeOrder("B")}

	if !orders.CallsAt("B") {
		t.Error("expected route to call at B")
	}
	if orders.CallsAt("Z") {
		t.Error("did not expect route to call at Z")
	}
}

func TestVehicleCarriesPassengers(t *testing.T) {
	vehicle := &Vehicle{
		Units: []VehicleUnit{
			{CargoClass: CargoClassFreight, CargoCapacity: 30},
			{CargoClass: CargoClassPassengers, CargoCapacity: 40},
		},
	}

	if !vehicle.CarriesPassengers() {
		t.Error("expected mixed formation to carry passengers")
	}

	// Zero-capacity passenger units do not count.
	vehicle.Units = []VehicleUnit{
		{CargoClass: CargoClassPassengers, CargoCapacity: 0},
		{CargoClass: CargoClassFreight, CargoCapacity: 30},
	}

	if vehicle.CarriesPassengers() {
		t.Error("did not expect freight-only formation to carry passengers")
	}
}

func TestSnapshotVehiclesAt(t *testing.T) {
	rail := &Vehicle{
		PrimaryIdentifier: "rail-1",
		TransportType:     TransportTypeRail,
		Orders:            OrderList{routeOrder("A"), routeOrder("B")},
	}
	bus := &Vehicle{
		PrimaryIdentifier: "bus-1",
		TransportType:     TransportTypeBus,
		Orders:            OrderList{routeOrder("A"), routeOrder("C")},
	}

	snapshot := &Snapshot{Vehicles: []*Vehicle{rail, bus}}

	vehicles, err := snapshot.VehiclesAt("A", TransportTypeRail)
	if err != nil {
		t.Fatal(err)
	}
	if len(vehicles) != 1 || vehicles[0] != rail {
		t.Errorf("expected only the rail vehicle at A, got %v", vehicles)
	}

	vehicles, err = snapshot.VehiclesAt("C", TransportTypeRail)
	if err != nil {
		t.Fatal(err)
	}
	if len(vehicles) != 0 {
		t.Errorf("expected no rail vehicles at C, got %v", vehicles)
	}
}

func TestSnapshotStationsFirstSeenOrder(t *testing.T) {
	snapshot := &Snapshot{
		Vehicles: []*Vehicle{
			{Orders: OrderList{routeOrder("B"), routeOrder("A")}},
			{Orders: OrderList{routeOrder("A"), routeOrder("C"), {Type: OrderGoToDepot}}},
		},
	}

	expected := []StationID{"B", "A", "C"}
	if stations := snapshot.Stations(); !reflect.DeepEqual(stations, expected) {
		t.Errorf("expected stations %v, got %v", expected, stations)
	}
}

func TestSnapshotCloneIsIndependent(t *testing.T) {
	original := &Snapshot{
		Name:        "fleet",
		CurrentDate: 100,
		Vehicles: []*Vehicle{
			{
				PrimaryIdentifier: "rail-1",
				TransportType:     TransportTypeRail,
				Orders:            OrderList{routeOrder("A")},
			},
		},
	}

	cloned, err := original.Clone()
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(cloned, original) {
		t.Error("expected clone to match the original")
	}

	cloned.Vehicles[0].Orders[0].Destination = "Z"

	if original.Vehicles[0].Orders[0].Destination != "A" {
		t.Error("mutating the clone changed the original")
	}
}

func TestCurrentOrderEmptyList(t *testing.T) {
	vehicle := &Vehicle{}

	if order := vehicle.CurrentOrder(); order != nil {
		t.Errorf("expected nil current order for an empty route, got %v", order)
	}
}
