package board

import (
	"github.com/stationboard/stationboard/pkg/fleet"
)

// resolveTerminus walks forward from a departure's order to find where the
// service effectively terminates, filling in the entry's calling-at list,
// terminus and via station. The terminus is the last unique station called
// at; a service that loops back to its departure order, or returns to the
// board's own station with a stopping call, terminates there.
//
// It reports whether a terminus was found. A departure that calls nowhere
// has no terminus and is not shown.
func resolveTerminus(entry *Entry, least *candidate, req *Request, cfg *Config) bool {
	orders := least.vehicle.Orders

	orderIndex := orders.Next(least.orderIndex)
	order := orders.At(orderIndex)

	// A service goes via the first station it passes through without
	// stopping and then calls at. Potential vias are tracked here until one
	// is confirmed by a call.
	candidateVia := fleet.InvalidStation

	call := CallAt{Station: order.Destination, ScheduledDate: entry.ScheduledDate}

	for remaining := len(orders); remaining > 0; remaining-- {
		// Looped round to the departure order again: the service terminates
		// wherever it last called.
		if orderIndex == least.orderIndex {
			return len(entry.CallingAt) > 0
		}

		if order.Type == fleet.OrderConditional {
			switch cfg.ConditionalPolicy {
			case ConditionalGiveUp:
				return false
			case ConditionalTakeBranch:
				target := orders.At(order.BranchTo)
				if target == nil {
					return false
				}

				orderIndex = order.BranchTo
				order = target
				continue
			case ConditionalSkipBranch:
				orderIndex = orders.Next(orderIndex)
				order = orders.At(orderIndex)
				continue
			}
		}

		// Back at the origin station with a stopping, unloading call: the
		// service has come full circle.
		if order.Type == fleet.OrderGoToStation &&
			order.Destination == req.Station &&
			(order.Unload != fleet.UnloadNone || cfg.ShowAllStops) &&
			order.StopsAtDestination() {
			return len(entry.CallingAt) > 0
		}

		if order.NonStop &&
			order.Type == fleet.OrderGoToStation &&
			entry.Via == fleet.InvalidStation {
			candidateVia = order.Destination
		}

		// Propagate the running date. Once any leg on the way has no
		// timetabled travel time, dates further along are unknown.
		if call.ScheduledDate != 0 && (order.TravelTime != 0 || order.TravelTimetabled) {
			call.ScheduledDate += order.TravelTime
		} else {
			call.ScheduledDate = 0
		}

		call.Station = order.Destination

		// Stations the vehicle does not stop and unload at are passed
		// through on the way.
		if (order.Unload == fleet.UnloadNone && !cfg.ShowAllStops) ||
			(order.Type != fleet.OrderGoToStation && order.Type != fleet.OrderImplicit) ||
			order.NonStop {
			call.ScheduledDate += order.WaitTime

			orderIndex = orders.Next(orderIndex)
			order = orders.At(orderIndex)
			continue
		}

		// Calling at the same station twice without reaching the start
		// again means the previous call was the end of the line.
		if containsCall(entry.CallingAt, call) {
			return true
		}

		if entry.Via == fleet.InvalidStation && candidateVia == order.Destination {
			entry.Via = order.Destination
		}

		entry.Terminus = call
		entry.CallingAt = append(entry.CallingAt, call)

		// Unloading everything here makes this the definitive terminus.
		if order.Type == fleet.OrderGoToStation && order.Unload == fleet.UnloadAll {
			return len(entry.CallingAt) > 0
		}

		call.ScheduledDate += order.WaitTime

		orderIndex = orders.Next(orderIndex)
		order = orders.At(orderIndex)
	}

	return false
}
