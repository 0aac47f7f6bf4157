package board

import (
	"github.com/stationboard/stationboard/pkg/fleet"
)

// resolveOrigin finds where an inbound service started and which stations it
// calls at on the way here, for an arrival board entry. The entry's terminus
// field carries the origin.
//
// The origin is the first loading stop after the arrival order, scanning
// forward round the circular order list, whose journey back to the arrival
// order is not cut short: no full unload, no second visit to the same
// station, and no visit to the board's own station in between.
func resolveOrigin(entry *Entry, least *candidate, req *Request, cfg *Config) bool {
	orders := least.vehicle.Orders

	// Arrivals are keyed and shown by when the vehicle pulls in, not when
	// it leaves again.
	entry.ScheduledDate -= least.order().WaitTime

	originIndex := orders.Next(least.orderIndex)
	found := false

	for remaining := len(orders); remaining > 0 && originIndex != least.orderIndex; remaining-- {
		origin := orders.At(originIndex)

		if (origin.Load != fleet.LoadNone || cfg.ShowAllStops) &&
			(origin.Type == fleet.OrderGoToStation || origin.Type == fleet.OrderImplicit) &&
			origin.Destination != req.Station {

			collision := false
			scanIndex := orders.Next(originIndex)

			for scanRemaining := len(orders); scanRemaining > 0 && scanIndex != least.orderIndex; scanRemaining-- {
				scan := orders.At(scanIndex)

				if scan.Unload == fleet.UnloadAll {
					collision = true
					break
				}

				if (scan.Type == fleet.OrderGoToStation || scan.Type == fleet.OrderImplicit) &&
					(scan.Destination == origin.Destination || scan.Destination == req.Station) {
					collision = true
					break
				}

				scanIndex = orders.Next(scanIndex)
			}

			if !collision {
				found = true
				break
			}
		}

		originIndex = orders.Next(originIndex)
	}

	if !found {
		return false
	}

	callIndex := orders.Next(originIndex)
	for remaining := len(orders); remaining > 0 && callIndex != least.orderIndex; remaining-- {
		call := orders.At(callIndex)

		if (call.Type == fleet.OrderGoToStation || call.Type == fleet.OrderImplicit) &&
			(call.Load != fleet.LoadNone || cfg.ShowAllStops) {
			entry.CallingAt = append(entry.CallingAt, CallAt{Station: call.Destination})
		}

		callIndex = orders.Next(callIndex)
	}

	entry.Terminus = CallAt{Station: orders.At(originIndex).Destination}

	return true
}
