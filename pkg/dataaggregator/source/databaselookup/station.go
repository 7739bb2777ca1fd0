package databaselookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sawaari/sawaari/pkg/dataaggregator/query"
	"github.com/sawaari/sawaari/pkg/database"
	"github.com/sawaari/sawaari/pkg/transit"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s Source) StationQuery(q query.Station) (*transit.Station, error) {
	collection := database.GetCollection("stations")

	var filter bson.M
	if q.PrimaryIdentifier != "" {
		filter = bson.M{"primaryidentifier": q.PrimaryIdentifier}
	} else {
		filter = stationNameFilter(q.Name)
	}

	var station *transit.Station
	collection.FindOne(context.Background(), filter).Decode(&station)

	if station == nil {
		return nil, errors.New("could not find a matching Station")
	}

	return station, nil
}

func (s Source) StationListQuery(q query.StationList) ([]transit.Station, error) {
	collection := database.GetCollection("stations")

	filter := bson.M{}
	if q.NameFilter != "" {
		filter = stationNameFilter(q.NameFilter)
	}

	cursor, err := collection.Find(context.Background(), filter)
	if err != nil {
		return nil, err
	}

	stations := []transit.Station{}
	if err := cursor.All(context.Background(), &stations); err != nil {
		return nil, err
	}

	return stations, nil
}

// matchStationRefs resolves a case-insensitive substring of a station
// name to the identifiers of every matching station. Station records
// rarely change so the resolved sets sit in redis for a while.
func (s Source) matchStationRefs(nameSubstring string) ([]string, error) {
	cacheKey := fmt.Sprintf("station-match/%s", strings.ToLower(nameSubstring))

	if s.stationMatchStore != nil {
		cachedRefs, err := s.stationMatchStore.Get(context.Background(), cacheKey)
		if err == nil && cachedRefs != "" {
			var refs []string
			if json.Unmarshal([]byte(cachedRefs), &refs) == nil {
				return refs, nil
			}
		}
	}

	collection := database.GetCollection("stations")
	cursor, err := collection.Find(context.Background(), stationNameFilter(nameSubstring))
	if err != nil {
		return nil, err
	}

	var refs []string
	for cursor.Next(context.Background()) {
		var station transit.Station
		if err := cursor.Decode(&station); err != nil {
			return nil, err
		}

		refs = append(refs, station.PrimaryIdentifier)
	}

	if s.stationMatchStore != nil {
		if encoded, err := json.Marshal(refs); err == nil {
			s.stationMatchStore.Set(context.Background(), cacheKey, string(encoded))
		}
	}

	return refs, nil
}

// stationNameFilter matches a substring against either the English or
// the Hindi station name, so Devanagari enquiries resolve too.
func stationNameFilter(substring string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(substring), Options: "i"}

	return bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"hindiname": pattern},
	}}
}
