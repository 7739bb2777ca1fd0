package databaselookup

import (
	"reflect"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/sawaari/sawaari/pkg/dataaggregator/query"
	"github.com/sawaari/sawaari/pkg/dataaggregator/source"
	"github.com/sawaari/sawaari/pkg/redis_client"
	"github.com/sawaari/sawaari/pkg/transit"
)

type Source struct {
	stationMatchStore *cache.Cache[string]
}

func (s Source) GetName() string {
	return "Database Lookup"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(transit.Station{}),
		reflect.TypeOf([]transit.Station{}),
		reflect.TypeOf([]transit.CandidateRow{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.Station:
		return s.StationQuery(q.(query.Station))
	case query.StationList:
		return s.StationListQuery(q.(query.StationList))
	case query.SearchCandidates:
		return s.SearchCandidatesQuery(q.(query.SearchCandidates))
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) Setup() Source {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(30*time.Minute))

	s.stationMatchStore = cache.New[string](redisStore)

	return s
}
