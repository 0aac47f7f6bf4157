package fleetboard

import (
	"reflect"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"

	"github.com/stationboard/stationboard/pkg/board"
	"github.com/stationboard/stationboard/pkg/dataaggregator/query"
	"github.com/stationboard/stationboard/pkg/dataaggregator/source"
	"github.com/stationboard/stationboard/pkg/fleet"
	"github.com/stationboard/stationboard/pkg/redis_client"
)

// Source generates predicted boards from an in-memory fleet snapshot.
type Source struct {
	Snapshot *fleet.Snapshot
	Config   board.Config

	resultsStore *cache.Cache[string]
}

func (s Source) GetName() string {
	return "Fleet Board Generator"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*board.Entry{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.Board:
		return s.BoardQuery(q.(query.Board))
	default:
		return nil, source.UnsupportedSourceError
	}
}

// Setup optionally attaches a redis-backed result cache. Board generation is
// deterministic over a snapshot, so cached results stay valid until the
// snapshot is replaced.
func (s Source) Setup(withCache bool) Source {
	if withCache {
		redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(15*time.Minute))

		s.resultsStore = cache.New[string](redisStore)
	}

	return s
}
