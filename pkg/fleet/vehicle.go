package fleet

type TransportType string

//goland:noinspection GoUnusedConst
const (
	TransportTypeRail    TransportType = "Rail"
	TransportTypeBus                   = "Bus"
	TransportTypeFerry                 = "Ferry"
	TransportTypeAir                   = "Air"
	TransportTypeUnknown               = "UNKNOWN"
)

// TransportTypes lists every transport category a board can cover.
var TransportTypes = []TransportType{
	TransportTypeRail,
	TransportTypeBus,
	TransportTypeFerry,
	TransportTypeAir,
}

type CargoClass string

const (
	CargoClassPassengers CargoClass = "Passengers"
	CargoClassMail                  = "Mail"
	CargoClassFreight               = "Freight"
)

// VehicleUnit is one cargo-carrying part of a vehicle, such as a single
// railway carriage.
type VehicleUnit struct {
	CargoClass    CargoClass `groups:"detailed"`
	CargoCapacity int        `groups:"detailed"`
}

// Vehicle is a read-only snapshot of one vehicle's state at the moment a
// board is computed.
type Vehicle struct {
	PrimaryIdentifier string        `groups:"basic"`
	Name              string        `groups:"basic"`
	TransportType     TransportType `groups:"basic"`

	Orders OrderList `groups:"detailed"`

	// CurrentOrderIndex is the order the vehicle is currently carrying out.
	CurrentOrderIndex int `groups:"basic"`

	// CurrentOrderTime is how many ticks the vehicle has already spent on
	// its current order.
	CurrentOrderTime Ticks `groups:"basic"`

	// Lateness is the vehicle's running lateness. Negative means early.
	Lateness Ticks `groups:"basic"`

	// Loading is set while the vehicle sits at a station in its loading
	// phase, which implies it has already arrived at its current order.
	Loading bool `groups:"basic"`

	StoppedInDepot bool `groups:"basic"`

	Units []VehicleUnit `groups:"detailed"`
}

// CurrentOrder returns the vehicle's current order, or nil for a vehicle
// with an empty order list.
func (v *Vehicle) CurrentOrder() *Order {
	if len(v.Orders) == 0 {
		return nil
	}

	return v.Orders.At(v.CurrentOrderIndex % len(v.Orders))
}

// CarriesPassengers reports whether any unit of the vehicle has passenger
// capacity.
func (v *Vehicle) CarriesPassengers() bool {
	for _, unit := range v.Units {
		if unit.CargoCapacity > 0 && unit.CargoClass == CargoClassPassengers {
			return true
		}
	}

	return false
}
