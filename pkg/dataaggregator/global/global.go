package global

import (
	"github.com/stationboard/stationboard/pkg/board"
	"github.com/stationboard/stationboard/pkg/dataaggregator"
	"github.com/stationboard/stationboard/pkg/dataaggregator/source/fleetboard"
	"github.com/stationboard/stationboard/pkg/fleet"
)

// Setup registers the board sources for one fleet snapshot. withCache
// requires a connected redis client.
func Setup(snapshot *fleet.Snapshot, config board.Config, withCache bool) {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	fleetboardSource := fleetboard.Source{
		Snapshot: snapshot,
		Config:   config,
	}
	fleetboardSource = fleetboardSource.Setup(withCache)

	dataaggregator.GlobalAggregator.RegisterSource(fleetboardSource)
}
