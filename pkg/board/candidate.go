package board

import (
	"math"

	"github.com/stationboard/stationboard/pkg/fleet"
)

// tombstoneDate marks a candidate that can produce no further entries.
// Tombstoned candidates stay in the candidate list, which keeps the
// simulation loop's progress argument simple, but are never selected again.
const tombstoneDate = fleet.Ticks(math.MaxInt64)

// candidate is one vehicle's scan state: the next order of that vehicle
// which could become a board entry, and when it is expected to complete.
type candidate struct {
	vehicle    *fleet.Vehicle
	orderIndex int

	// expectedDate is in ticks relative to now. It may be negative for a
	// vehicle that is already overdue.
	expectedDate fleet.Ticks

	// lateness is the vehicle's lateness clamped to zero.
	lateness fleet.Ticks

	status Status
}

func (c *candidate) order() *fleet.Order {
	return c.vehicle.Orders.At(c.orderIndex)
}

// selectionKey orders candidates when picking the globally earliest one.
// Arrival boards exclude the wait time at the stop so vehicles compare by
// arrival rather than departure time.
func (c *candidate) selectionKey(mode Mode) fleet.Ticks {
	key := c.expectedDate - c.lateness

	if mode == ModeArrival {
		key -= c.order().WaitTime
	}

	return key
}

func isDeparture(o *fleet.Order, station fleet.StationID, showAllStops bool) bool {
	return o.Type == fleet.OrderGoToStation &&
		o.Destination == station &&
		(o.Load != fleet.LoadNone || showAllStops) &&
		o.WaitTime != 0
}

func isVia(o *fleet.Order, station fleet.StationID) bool {
	return (o.Type == fleet.OrderGoToStation || o.Type == fleet.OrderGoToWaypoint) &&
		o.Destination == station &&
		o.NonStop
}

func isArrival(o *fleet.Order, station fleet.StationID, showAllStops bool) bool {
	return o.Type == fleet.OrderGoToStation &&
		o.Destination == station &&
		(o.Unload != fleet.UnloadNone || showAllStops) &&
		o.WaitTime != 0
}

// qualifies reports whether the order can appear on the requested board.
func (req *Request) qualifies(o *fleet.Order, cfg *Config) bool {
	if req.Mode == ModeDeparture {
		if isDeparture(o, req.Station, cfg.ShowAllStops) {
			return true
		}

		return req.IncludeVia && isVia(o, req.Station)
	}

	return isArrival(o, req.Station, cfg.ShowAllStops)
}

// scanVehicle walks forward from the vehicle's current order to find the
// first one that qualifies for the board, and packages it as a candidate.
// It returns nil when the vehicle has no qualifying order within the
// horizon. Each order is considered at most once, so the walk terminates on
// cyclic order graphs.
func scanVehicle(v *fleet.Vehicle, req *Request, cfg *Config) *candidate {
	if len(v.Orders) == 0 || v.StoppedInDepot {
		return nil
	}

	orderIndex := v.CurrentOrderIndex % len(v.Orders)
	runningDate := -v.CurrentOrderTime
	status := StatusTravelling

	current := v.CurrentOrder()

	// A vehicle on its way to a depot to stop there has all its remaining
	// calls cancelled.
	if current.HaltsInDepot() {
		status = StatusCancelled
	}

	if v.Loading {
		// The vehicle has already arrived at its current order and is in
		// the loading phase, so the travel there comes off the clock again.
		status = StatusArrived
		runningDate -= current.TravelTime
		if v.Lateness < 0 {
			runningDate -= v.Lateness
		}
	}

	for remaining := len(v.Orders); remaining > 0; remaining-- {
		order := v.Orders.At(orderIndex)
		runningDate += order.TravelTime + order.WaitTime

		if runningDate-v.Lateness > cfg.MaxHorizon {
			return nil
		}

		if order.Type == fleet.OrderConditional {
			switch cfg.ConditionalPolicy {
			case ConditionalGiveUp:
				return nil
			case ConditionalTakeBranch:
				if status != StatusCancelled {
					status = StatusTravelling
				}

				target := v.Orders.At(order.BranchTo)
				if target == nil {
					return nil
				}
				orderIndex = order.BranchTo

				// The target's own travel time gets added again on the
				// next pass, so it comes off here. Net effect: taking a
				// branch costs the target's wait time only.
				runningDate -= target.TravelTime
				continue
			case ConditionalSkipBranch:
				if status != StatusCancelled {
					status = StatusTravelling
				}

				orderIndex = v.Orders.Next(orderIndex)
				continue
			}
		}

		if order.Type == fleet.OrderImplicit {
			orderIndex = v.Orders.Next(orderIndex)
			continue
		}

		// Zero travel time that was never timetabled means there is no
		// data to predict from.
		if order.TravelTime == 0 && !order.TravelTimetabled {
			return nil
		}

		if req.qualifies(order, cfg) {
			// A cancelled call that was scheduled to have already
			// happened is not worth showing.
			if runningDate < 0 && status == StatusCancelled {
				return nil
			}

			cand := &candidate{
				vehicle:      v,
				orderIndex:   orderIndex,
				expectedDate: runningDate,
				lateness:     v.Lateness,
				status:       status,
			}

			if cand.lateness < 0 {
				cand.lateness = 0
			}

			// An early vehicle is keyed by its scheduled time, not the
			// over-optimistic predicted one.
			if v.Lateness < 0 && !v.Loading {
				cand.expectedDate -= v.Lateness
			}

			return cand
		}

		if status != StatusCancelled {
			status = StatusTravelling
		}
		orderIndex = v.Orders.Next(orderIndex)
	}

	return nil
}

// advance moves the candidate past the order just used for an entry and
// finds the vehicle's next qualifying order. Candidates with no further
// qualifying order within the horizon are tombstoned.
func (c *candidate) advance(req *Request, cfg *Config) {
	orders := c.vehicle.Orders

	c.orderIndex = orders.Next(c.orderIndex)
	order := orders.At(c.orderIndex)
	c.expectedDate += order.TravelTime + order.WaitTime

	found := false

walk:
	for remaining := len(orders); remaining > 0; remaining-- {
		if order.Type == fleet.OrderConditional {
			switch cfg.ConditionalPolicy {
			case ConditionalGiveUp:
				break walk
			case ConditionalTakeBranch:
				target := orders.At(order.BranchTo)
				if target == nil {
					break walk
				}

				c.orderIndex = order.BranchTo
				order = target
				c.expectedDate += order.WaitTime
				continue
			case ConditionalSkipBranch:
				c.orderIndex = orders.Next(c.orderIndex)
				order = orders.At(c.orderIndex)
				c.expectedDate += order.TravelTime + order.WaitTime
				continue
			}
		}

		if order.Type == fleet.OrderImplicit {
			c.orderIndex = orders.Next(c.orderIndex)
			order = orders.At(c.orderIndex)
			continue
		}

		if order.TravelTime == 0 && !order.TravelTimetabled {
			break
		}

		if c.expectedDate-c.lateness > cfg.MaxHorizon {
			break
		}

		if req.qualifies(order, cfg) {
			found = true
			break
		}

		c.orderIndex = orders.Next(c.orderIndex)
		order = orders.At(c.orderIndex)
		c.expectedDate += order.TravelTime + order.WaitTime
	}

	if !found {
		c.expectedDate = tombstoneDate
	}

	// The vehicle cannot already have arrived at a stop it has yet to reach.
	if c.status == StatusArrived {
		c.status = StatusTravelling
	}
}
