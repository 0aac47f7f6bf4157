package board

import (
	"github.com/rs/zerolog/log"

	"github.com/stationboard/stationboard/pkg/fleet"
)

// simulationCeiling bounds the number of simulation passes as a safeguard
// against degenerate order graphs. Each pass either grows the board or
// strictly advances some candidate's key, so well formed graphs finish long
// before reaching it.
const simulationCeiling = 10000

// Generate computes the predicted departure or arrival board for a station.
//
// It works by repeatedly picking the candidate expected to complete its call
// soonest, materialising it into a board entry, then advancing that vehicle
// to its next qualifying order, until the horizon or the result cap is
// reached. The computation only reads the roster's vehicles; the returned
// entries are owned by the caller.
//
// A roster lookup failure yields an empty board rather than an error.
func Generate(roster fleet.Roster, now fleet.Ticks, req Request, cfg Config) []*Entry {
	entries := []*Entry{}

	if !req.IncludePassengers && !req.IncludeFreight {
		return entries
	}

	var candidates []*candidate
	var least *candidate

	for _, transportType := range req.TransportTypes {
		vehicles, err := roster.VehiclesAt(req.Station, transportType)
		if err != nil {
			log.Error().
				Err(err).
				Str("station", string(req.Station)).
				Str("transporttype", string(transportType)).
				Msg("Vehicle roster lookup failed")
			return entries
		}

		for _, vehicle := range vehicles {
			// With an exclusive passenger or freight board, vehicles
			// carrying the wrong class are left out entirely.
			if req.IncludePassengers != req.IncludeFreight {
				if vehicle.CarriesPassengers() != req.IncludePassengers {
					continue
				}
			}

			cand := scanVehicle(vehicle, &req, &cfg)
			if cand == nil {
				continue
			}

			candidates = append(candidates, cand)

			if least == nil || cand.selectionKey(req.Mode) < least.selectionKey(req.Mode) {
				least = cand
			}
		}
	}

	if len(candidates) == 0 {
		return entries
	}

	for i := 0; i < simulationCeiling; i++ {
		if len(entries) >= cfg.MaxResults ||
			least.expectedDate-least.lateness > cfg.MaxHorizon {
			break
		}

		entry := &Entry{
			Type:          req.Mode,
			ScheduledDate: now + least.expectedDate - least.lateness,
			Lateness:      least.lateness,
			Status:        least.status,
			Vehicle:       least.vehicle,
			Order:         least.order(),
		}

		if req.Mode == ModeDeparture {
			if resolveTerminus(entry, least, &req, &cfg) {
				if !cfg.MergeIdentical || !isDuplicate(entries, entry) {
					entries = append(entries, entry)

					if cfg.SmartTerminus {
						shortenTermini(entries, entry)
					}

					// A late vehicle is shown by when it pulls in, not
					// when it leaves again.
					if entry.Status != StatusArrived && entry.Lateness > 0 {
						entry.Lateness -= least.order().WaitTime
					}
				}
			}
		} else {
			if resolveOrigin(entry, least, &req, &cfg) {
				if !cfg.MergeIdentical || !isDuplicate(entries, entry) {
					entries = append(entries, entry)
				}
			}
		}

		least.advance(&req, &cfg)

		// Find the new earliest candidate. Ties keep the incumbent, so
		// repeated runs over the same snapshot stay deterministic.
		for _, cand := range candidates {
			if least.selectionKey(req.Mode) > cand.selectionKey(req.Mode) &&
				cand.expectedDate-cand.lateness < cfg.MaxHorizon {
				least = cand
			}
		}
	}

	return entries
}
