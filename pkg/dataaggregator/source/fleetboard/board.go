package fleetboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stationboard/stationboard/pkg/board"
	"github.com/stationboard/stationboard/pkg/dataaggregator/query"
	"github.com/stationboard/stationboard/pkg/fleet"
)

func (s Source) BoardQuery(q query.Board) ([]*board.Entry, error) {
	cacheKey := boardCacheKey(q, s.Snapshot)

	if s.resultsStore != nil {
		cachedEntries, err := s.resultsStore.Get(context.Background(), cacheKey)

		if err == nil && cachedEntries != "" {
			var entries []*board.Entry

			if err := json.Unmarshal([]byte(cachedEntries), &entries); err == nil {
				return entries, nil
			}
		}
	}

	request := board.Request{
		Station:        q.Station,
		TransportTypes: q.TransportTypes,
		Mode:           q.Mode,
		IncludeVia:     q.IncludeVia,

		IncludePassengers: !q.FreightOnly,
		IncludeFreight:    !q.PassengersOnly,
	}

	if len(request.TransportTypes) == 0 {
		request.TransportTypes = fleet.TransportTypes
	}
	if request.Mode == "" {
		request.Mode = board.ModeDeparture
	}

	config := s.Config
	if q.Count > 0 {
		config.MaxResults = q.Count
	}

	startTime := time.Now()
	entries := board.Generate(s.Snapshot, s.Snapshot.CurrentDate, request, config)
	log.Debug().Str("Length", time.Since(startTime).String()).Msg("Board generation")

	if s.resultsStore != nil {
		entriesJSON, err := json.Marshal(entries)
		if err == nil {
			s.resultsStore.Set(context.Background(), cacheKey, string(entriesJSON))
		}
	}

	return entries, nil
}

func boardCacheKey(q query.Board, snapshot *fleet.Snapshot) string {
	return fmt.Sprintf(
		"board/%s/%d/%s/%s/%v/%v/%v/%v/%d",
		snapshot.Name, snapshot.CurrentDate,
		q.Station, q.Mode, q.TransportTypes,
		q.IncludeVia, q.PassengersOnly, q.FreightOnly, q.Count,
	)
}
