package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	iso8601 "github.com/senseyeio/duration"
	"gopkg.in/yaml.v3"

	"github.com/stationboard/stationboard/pkg/board"
	"github.com/stationboard/stationboard/pkg/fleet"
)

// Document is a YAML description of a fleet snapshot plus the board
// configuration to apply to it. It is the external input format for the
// scenario CLI and the web API.
type Document struct {
	Name string `yaml:"name" validate:"required"`

	// CurrentDate is the absolute simulation time of the snapshot, in ticks.
	CurrentDate fleet.Ticks `yaml:"current_date"`

	Board BoardSettings `yaml:"board"`

	Vehicles []VehicleDocument `yaml:"vehicles" validate:"required,min=1,dive"`
}

type BoardSettings struct {
	// Horizon is an ISO 8601 duration ("P2D", "PT12H") converted to ticks
	// at 74 ticks per day. HorizonTicks takes precedence when non-zero.
	Horizon      string      `yaml:"horizon" validate:"omitempty"`
	HorizonTicks fleet.Ticks `yaml:"horizon_ticks" validate:"gte=0"`

	MaxResults int `yaml:"max_results" validate:"gte=0"`

	ConditionalPolicy string `yaml:"conditional_policy" validate:"omitempty,oneof=give-up take-branch skip-branch"`

	ShowAllStops   bool `yaml:"show_all_stops"`
	MergeIdentical bool `yaml:"merge_identical"`
	SmartTerminus  bool `yaml:"smart_terminus"`
}

type VehicleDocument struct {
	PrimaryIdentifier string              `yaml:"id" validate:"required"`
	Name              string              `yaml:"name"`
	TransportType     fleet.TransportType `yaml:"transport_type" validate:"required,oneof=Rail Bus Ferry Air"`

	CurrentOrderIndex int         `yaml:"current_order" validate:"gte=0"`
	CurrentOrderTime  fleet.Ticks `yaml:"current_order_time" validate:"gte=0"`
	Lateness          fleet.Ticks `yaml:"lateness"`
	Loading           bool        `yaml:"loading"`
	StoppedInDepot    bool        `yaml:"stopped_in_depot"`

	Units []UnitDocument `yaml:"units" validate:"dive"`

	Orders []OrderDocument `yaml:"orders" validate:"required,min=1,dive"`
}

type UnitDocument struct {
	CargoClass    fleet.CargoClass `yaml:"cargo_class" validate:"required,oneof=Passengers Mail Freight"`
	CargoCapacity int              `yaml:"cargo_capacity" validate:"gte=0"`
}

type OrderDocument struct {
	Type        fleet.OrderType `yaml:"type" validate:"required,oneof=GoToStation GoToWaypoint GoToDepot Conditional Implicit"`
	Destination fleet.StationID `yaml:"destination"`

	Load    fleet.LoadDirective   `yaml:"load" validate:"omitempty,oneof=LoadIfPossible NoLoad"`
	Unload  fleet.UnloadDirective `yaml:"unload" validate:"omitempty,oneof=UnloadIfAccepted NoUnload UnloadAll"`
	NonStop bool                  `yaml:"non_stop"`

	WaitTime         fleet.Ticks `yaml:"wait_time" validate:"gte=0"`
	TravelTime       fleet.Ticks `yaml:"travel_time" validate:"gte=0"`
	TravelTimetabled bool        `yaml:"travel_timetabled"`

	// BranchTo is the conditional branch target order index. Left unset it
	// reads as unresolved.
	BranchTo *int `yaml:"branch_to"`

	DepotHalt bool `yaml:"depot_halt"`
}

func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

func Parse(data []byte) (*Document, error) {
	var document Document

	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse scenario document: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(document); err != nil {
		return nil, fmt.Errorf("invalid scenario document: %w", err)
	}

	return &document, nil
}

// Snapshot converts the document into an immutable fleet snapshot.
func (d *Document) Snapshot() (*fleet.Snapshot, error) {
	snapshot := &fleet.Snapshot{
		Name:        d.Name,
		CurrentDate: d.CurrentDate,
	}

	for _, vehicleDocument := range d.Vehicles {
		vehicle := &fleet.Vehicle{}

		err := copier.Copy(vehicle, &vehicleDocument)
		if err != nil {
			return nil, err
		}

		vehicle.Orders = make(fleet.OrderList, 0, len(vehicleDocument.Orders))
		for _, orderDocument := range vehicleDocument.Orders {
			vehicle.Orders = append(vehicle.Orders, orderDocument.order())
		}

		vehicle.Units = make([]fleet.VehicleUnit, 0, len(vehicleDocument.Units))
		for _, unitDocument := range vehicleDocument.Units {
			vehicle.Units = append(vehicle.Units, fleet.VehicleUnit{
				CargoClass:    unitDocument.CargoClass,
				CargoCapacity: unitDocument.CargoCapacity,
			})
		}

		snapshot.Vehicles = append(snapshot.Vehicles, vehicle)
	}

	return snapshot, nil
}

func (o *OrderDocument) order() fleet.Order {
	order := fleet.Order{
		Type:             o.Type,
		Destination:      o.Destination,
		Load:             o.Load,
		Unload:           o.Unload,
		NonStop:          o.NonStop,
		WaitTime:         o.WaitTime,
		TravelTime:       o.TravelTime,
		TravelTimetabled: o.TravelTimetabled,
		BranchTo:         -1,
		DepotHalt:        o.DepotHalt,
	}

	if order.Load == "" {
		order.Load = fleet.LoadIfPossible
	}
	if order.Unload == "" {
		order.Unload = fleet.UnloadIfAccepted
	}
	if o.BranchTo != nil {
		order.BranchTo = *o.BranchTo
	}

	return order
}

const (
	defaultHorizon    = 5 * fleet.DayTicks
	defaultMaxResults = 32
)

// BoardConfig resolves the document's board settings into the immutable
// configuration value the core takes. Settings the document leaves out fall
// back to usable defaults.
func (d *Document) BoardConfig() (board.Config, error) {
	config := board.Config{
		MaxHorizon:     d.Board.HorizonTicks,
		MaxResults:     d.Board.MaxResults,
		ShowAllStops:   d.Board.ShowAllStops,
		MergeIdentical: d.Board.MergeIdentical,
		SmartTerminus:  d.Board.SmartTerminus,
	}

	if config.MaxHorizon == 0 && d.Board.Horizon != "" {
		horizonTicks, err := parseHorizon(d.Board.Horizon)
		if err != nil {
			return config, err
		}

		config.MaxHorizon = horizonTicks
	}

	if config.MaxHorizon == 0 {
		config.MaxHorizon = defaultHorizon
	}
	if config.MaxResults == 0 {
		config.MaxResults = defaultMaxResults
	}

	switch d.Board.ConditionalPolicy {
	case "", "give-up":
		config.ConditionalPolicy = board.ConditionalGiveUp
	case "take-branch":
		config.ConditionalPolicy = board.ConditionalTakeBranch
	case "skip-branch":
		config.ConditionalPolicy = board.ConditionalSkipBranch
	}

	return config, nil
}

// parseHorizon converts an ISO 8601 duration into ticks, with one in-game
// day standing in for one calendar day.
func parseHorizon(value string) (fleet.Ticks, error) {
	horizonDuration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, fmt.Errorf("invalid horizon duration: %w", err)
	}

	epoch := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	shifted := horizonDuration.Shift(epoch)

	tickLength := (24 * time.Hour) / time.Duration(fleet.DayTicks)

	return fleet.Ticks(shifted.Sub(epoch) / tickLength), nil
}
