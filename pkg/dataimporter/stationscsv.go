package dataimporter

import (
	"context"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/sawaari/sawaari/pkg/database"
	"github.com/sawaari/sawaari/pkg/transit"
	"github.com/sourcegraph/conc/pool"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImportStationsCSV loads station reference data from a CSV file and
// upserts it into the stations collection.
func ImportStationsCSV(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var stations []transit.Station
	if err := gocsv.UnmarshalFile(file, &stations); err != nil {
		return err
	}

	stationsCollection := database.GetCollection("stations")

	p := pool.New().WithMaxGoroutines(10)
	for _, station := range stations {
		p.Go(func() {
			opts := options.Update().SetUpsert(true)
			_, err := stationsCollection.UpdateOne(context.Background(),
				bson.M{"primaryidentifier": station.PrimaryIdentifier},
				bson.M{"$set": station},
				opts,
			)
			if err != nil {
				log.Error().Err(err).Str("station", station.PrimaryIdentifier).Msg("Station upsert")
			}
		})
	}
	p.Wait()

	log.Info().Int("count", len(stations)).Msg("Imported stations")

	return nil
}
